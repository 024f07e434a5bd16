package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/independnet/utils"
)

func TestMakeNonNegativeNumber(t *testing.T) {
	assert.Equal(t, 5, utils.MakeNonNegative(5))
	assert.Equal(t, 0.0, utils.MakeNonNegative(-5.0))
	assert.Equal(t, int64(0), utils.MakeNonNegative(int64(-1)))
	assert.Equal(t, 0.0, utils.MakeNonNegative(0.0))
	assert.Equal(t, 0.0, utils.MakeNonNegative(math.Inf(-1)))
}

func TestMakeNonNegativeSlice(t *testing.T) {
	in := []float64{5, 5.0, -5, -5.0}
	out := utils.MakeNonNegativeSlice(in)
	assert.InDeltaSlice(t, []float64{5, 5, 0, 0}, out, 1e-9)
	// 输入不被修改
	assert.Equal(t, []float64{5, 5.0, -5, -5.0}, in)

	assert.Nil(t, utils.MakeNonNegativeSlice[float64](nil))
	assert.Equal(t, []int{}, utils.MakeNonNegativeSlice([]int{}))
}

func TestMakeNonNegativeIdempotent(t *testing.T) {
	in := []float64{-3.5, 0, 2.25, -0.001, 1e9}
	once := utils.MakeNonNegativeSlice(in)
	twice := utils.MakeNonNegativeSlice(once)
	assert.Equal(t, once, twice)
	for _, x := range in {
		assert.Equal(t, utils.MakeNonNegative(x), utils.MakeNonNegative(utils.MakeNonNegative(x)))
	}
}
