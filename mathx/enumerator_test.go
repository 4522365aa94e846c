package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testPrime = 1_000_000_007

func TestEnumerator_Factorial(t *testing.T) {
	t.Run("success - small factorials", func(t *testing.T) {
		// arrange
		e := NewEnumerator(100, testPrime)

		// assert
		assert.Equal(t, uint64(1), e.Factorial(0))
		assert.Equal(t, uint64(720), e.Factorial(6))
	})
}

func TestEnumerator_Choose(t *testing.T) {
	t.Run("success - binomial coefficients", func(t *testing.T) {
		// arrange
		e := NewEnumerator(100, testPrime)

		// assert
		assert.Equal(t, uint64(1), e.Choose(6, 0))
		assert.Equal(t, uint64(6), e.Choose(6, 1))
		assert.Equal(t, uint64(15), e.Choose(6, 2))
		assert.Equal(t, e.Choose(6, 2), e.Choose(6, 4))
		assert.Equal(t, uint64(0), e.Choose(6, 7))
	})
	t.Run("failure - argument beyond the table panics", func(t *testing.T) {
		// arrange
		e := NewEnumerator(30, testPrime)

		// assert
		assert.Panics(t, func() { e.Choose(31, 2) })
	})
}

func TestEnumerator_Permute(t *testing.T) {
	t.Run("success - falling factorials", func(t *testing.T) {
		// arrange
		e := NewEnumerator(100, testPrime)

		// assert
		assert.Equal(t, uint64(1), e.Permute(7, 0))
		assert.Equal(t, uint64(7), e.Permute(7, 1))
		assert.Equal(t, uint64(5040), e.Permute(7, 7))
		assert.Equal(t, uint64(0), e.Permute(7, 8))
	})
}

func TestEnumerator_ChooseWithRepetition(t *testing.T) {
	t.Run("success - multiset coefficients", func(t *testing.T) {
		// arrange
		e := NewEnumerator(100, testPrime)

		// assert
		assert.Equal(t, uint64(1), e.ChooseWithRepetition(3, 0))
		assert.Equal(t, uint64(3), e.ChooseWithRepetition(3, 1))
		assert.Equal(t, uint64(15), e.ChooseWithRepetition(3, 4))
	})
}
