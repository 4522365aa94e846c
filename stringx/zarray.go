package stringx

//snip:z_algorithm
// ZArray returns z where z[i] is the length of the longest slice starting
// at s[i] that is also a proper prefix of s. z[0] is 0.
func ZArray[T comparable](s []T) []int {
	n := len(s)
	z := make([]int, n)

	// Z-box window [left, right)
	left, right := 0, 0

	for i := 1; i < n; i++ {
		if i >= right {
			left, right = i, i
			for right < n && s[right-left] == s[right] {
				right++
			}
			z[i] = right - left
			continue
		}
		if k := i - left; z[k] < right-i {
			z[i] = z[k]
			continue
		}
		left = i
		for right < n && s[right-left] == s[right] {
			right++
		}
		z[i] = right - left
	}
	return z
}
