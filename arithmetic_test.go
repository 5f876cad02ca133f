package dynvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T, size, x int) *Vector[int] {
	t.Helper()
	v := mustNew[int](t, size)
	v.Fill(x)
	return v
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name     string
		op       func(v *Vector[int]) *Vector[int]
		expected int
	}{
		{"Add", func(v *Vector[int]) *Vector[int] { return v.AddScalar(3) }, 6},
		{"Sub", func(v *Vector[int]) *Vector[int] { return v.SubScalar(3) }, 0},
		{"Mul", func(v *Vector[int]) *Vector[int] { return v.MulScalar(3) }, 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := filled(t, 3, 3)
			res := tc.op(v)

			assert.True(t, res.Equal(filled(t, 3, tc.expected)))
			assert.True(t, v.Equal(filled(t, 3, 3)), "operand must be unmodified")
		})
	}

	t.Run("RebindToSelf", func(t *testing.T) {
		v := filled(t, 3, 3)
		v = v.AddScalar(3)
		assert.True(t, v.Equal(filled(t, 3, 6)))
	})

	t.Run("Unsigned", func(t *testing.T) {
		v, err := FromSlice([]uint8{5, 10})
		require.NoError(t, err)
		assert.Equal(t, []uint8{2, 7}, v.SubScalar(3).Values())
	})

	t.Run("Float", func(t *testing.T) {
		v, err := FromSlice([]float64{1.5, -2})
		require.NoError(t, err)
		assert.Equal(t, []float64{-3, 4}, v.MulScalar(-2).Values())
	})
}

func TestAdd(t *testing.T) {
	t.Run("EqualSize", func(t *testing.T) {
		v1 := mustNew[int](t, 5)
		v2 := mustNew[int](t, 5)
		require.NoError(t, v1.Set(3, 3))
		require.NoError(t, v2.Set(3, 5))

		v, err := v1.Add(v2)
		require.NoError(t, err)

		res := mustNew[int](t, 5)
		require.NoError(t, res.Set(3, 8))
		assert.True(t, res.Equal(v))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		v1 := mustNew[int](t, 5)
		v2 := mustNew[int](t, 10)

		v, err := v1.Add(v2)
		assert.Nil(t, v)

		var sme *ErrSizeMismatch
		require.ErrorAs(t, err, &sme)
		assert.Equal(t, 5, sme.Expected)
		assert.Equal(t, 10, sme.Actual)
	})
}

func TestSub(t *testing.T) {
	t.Run("EqualSize", func(t *testing.T) {
		v1 := mustNew[int](t, 5)
		v2 := mustNew[int](t, 5)
		require.NoError(t, v1.Set(3, 10))
		require.NoError(t, v2.Set(3, 5))

		v, err := v1.Sub(v2)
		require.NoError(t, err)

		res := mustNew[int](t, 5)
		require.NoError(t, res.Set(3, 5))
		assert.True(t, res.Equal(v))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := mustNew[int](t, 5).Sub(mustNew[int](t, 10))
		assert.ErrorIs(t, err, ErrMismatch)
	})
}

func TestDot(t *testing.T) {
	t.Run("EqualSize", func(t *testing.T) {
		v1 := mustNew[int](t, 5)
		v2 := mustNew[int](t, 5)
		require.NoError(t, v1.Set(3, 3))
		require.NoError(t, v2.Set(3, 3))

		v, err := v1.Dot(v2)
		require.NoError(t, err)
		assert.Equal(t, 9, v)
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		v, err := mustNew[int](t, 5).Dot(mustNew[int](t, 10))
		assert.ErrorIs(t, err, ErrMismatch)
		assert.Zero(t, v)
	})
}

func TestFailedOpsLeaveOperandsIntact(t *testing.T) {
	v1, err := FromSlice([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	v2, err := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)

	_, _ = v1.Add(v2)
	_, _ = v1.Sub(v2)
	_, _ = v1.Dot(v2)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, v1.Values())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, v2.Values())
}

func TestNilOperand(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3})
	require.NoError(t, err)
	var null *Vector[int]

	assert.Equal(t, 0, null.Len())

	_, err = v.Add(nil)
	var sme *ErrSizeMismatch
	require.ErrorAs(t, err, &sme)
	assert.Equal(t, 3, sme.Expected)
	assert.Equal(t, 0, sme.Actual)

	_, err = v.Sub(nil)
	assert.ErrorIs(t, err, ErrMismatch)

	_, err = v.Dot(nil)
	assert.ErrorIs(t, err, ErrMismatch)

	_, err = null.Add(v)
	assert.ErrorIs(t, err, ErrMismatch)

	_, err = null.Dot(null)
	assert.ErrorIs(t, err, ErrMismatch)

	assert.Equal(t, []int{1, 2, 3}, v.Values())
}

func BenchmarkAdd(b *testing.B) {
	v1, _ := New[float32](4096)
	v2, _ := New[float32](4096)
	v1.Fill(1)
	v2.Fill(2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v1.Add(v2)
	}
}
