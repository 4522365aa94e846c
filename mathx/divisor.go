package mathx

//snip:divisor
// Divisors returns every divisor of n in increasing order by trial
// division up to sqrt(n).
func Divisors(n int) []int {
	front := []int{}
	back := []int{}
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		front = append(front, i)
		if n/i != i {
			back = append(back, n/i)
		}
	}
	for i := len(back) - 1; i >= 0; i-- {
		front = append(front, back[i])
	}
	return front
}
