package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type primeSieve interface {
	IsPrime(int) bool
	Factorize(int) []int
}

func TestSieve_IsPrime(t *testing.T) {
	sieves := map[string]primeSieve{
		"eratosthenes": NewSieve(1_000_000),
		"linear":       NewLinearSieve(1_000_000),
	}
	for name, s := range sieves {
		t.Run("success - primality for "+name+" sieve", func(t *testing.T) {
			// assert
			assert.False(t, s.IsPrime(0))
			assert.False(t, s.IsPrime(1))
			assert.True(t, s.IsPrime(2))
			assert.True(t, s.IsPrime(278809))
			assert.False(t, s.IsPrime(836427))
		})
		t.Run("failure - out of range panics for "+name+" sieve", func(t *testing.T) {
			// assert
			assert.Panics(t, func() { s.IsPrime(1_000_001) })
		})
	}
}

func TestSieve_Factorize(t *testing.T) {
	sieves := map[string]primeSieve{
		"eratosthenes": NewSieve(1_000_000),
		"linear":       NewLinearSieve(1_000_000),
	}
	for name, s := range sieves {
		t.Run("success - factors for "+name+" sieve", func(t *testing.T) {
			// assert
			assert.Nil(t, s.Factorize(0))
			assert.Nil(t, s.Factorize(1))
			assert.Equal(t, []int{2}, s.Factorize(2))
			assert.Equal(t, []int{2, 2, 2, 3, 5}, s.Factorize(120))
			assert.Equal(t, []int{3, 278809}, s.Factorize(836427))
		})
	}
}

func TestLinearSieve_Primes(t *testing.T) {
	t.Run("success - primes are listed in order", func(t *testing.T) {
		// arrange
		l := NewLinearSieve(29)

		// assert
		assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, l.Primes())
	})
}

func TestDivisors(t *testing.T) {
	t.Run("success - divisors in increasing order", func(t *testing.T) {
		// assert
		assert.Equal(t, []int{1, 2, 5, 10}, Divisors(10))
		assert.Equal(t, []int{1, 5, 25}, Divisors(25))
		assert.Equal(t, []int{1, 17}, Divisors(17))
	})
}
