package shapeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildColumnSubArray holds dimension 0 of a (2,3) c-order array fixed,
// producing the (3,) sub-array shared by every row.
func buildColumnSubArray(t *testing.T) (whole ShapeInfo, sub ShapeInfo, offsets []int64) {
	t.Helper()
	whole = ShapeBuffer([]int64{2, 3})
	sub = make(ShapeInfo, ShapeInfoLength(1))
	offsets = make([]int64, 2)
	CalcSubArrShapeAndOffsets(whole, []int{0}, sub, offsets, false)
	return
}

func TestCalcSubArrShapeAndOffsets(t *testing.T) {
	_, sub, offsets := buildColumnSubArray(t)

	assert.Equal(t, []int64{3}, sub.Shape())
	assert.Equal(t, []int64{1}, sub.Stride())
	assert.Equal(t, []int64{0, 3}, offsets)
}

func TestCalcSubArrShapeAndOffsetsKeepUnities(t *testing.T) {
	whole := ShapeBuffer([]int64{2, 3})
	sub := make(ShapeInfo, ShapeInfoLength(2))
	offsets := make([]int64, 2)

	CalcSubArrShapeAndOffsets(whole, []int{0}, sub, offsets, true)

	assert.Equal(t, []int64{1, 3}, sub.Shape())
	assert.Equal(t, []int64{0, 3}, offsets)
}

func TestCalcSubArrShapeAndOffsetsWholeArray(t *testing.T) {
	whole := ShapeBuffer([]int64{2, 3})
	sub := make(ShapeInfo, ShapeInfoLength(2))
	offsets := make([]int64, 1)

	CalcSubArrShapeAndOffsets(whole, nil, sub, offsets, false)

	assert.Equal(t, whole, sub)
	assert.Equal(t, []int64{0}, offsets)
}

func TestMaxIndToMinIndDifferentRank(t *testing.T) {
	whole, sub, _ := buildColumnSubArray(t)
	maxIdxs := []int64{1, 1}
	minIdxs := make([]int64, 1)

	MaxIndToMinInd(maxIdxs, minIdxs, whole, sub, []int{0}, 1)
	assert.Equal(t, []int64{1}, minIdxs)
}

func TestSubArrayIndexAndOffset(t *testing.T) {
	whole, sub, _ := buildColumnSubArray(t)

	assert.Equal(t, int64(1), SubArrayIndex(4, whole, sub, []int{0}, 1))
	assert.Equal(t, int64(1), SubArrayOffset(4, whole, sub, []int{0}, 1))

	assert.Equal(t, int64(0), SubArrayIndex(0, whole, sub, []int{0}, 1))
	assert.Equal(t, int64(2), SubArrayIndex(5, whole, sub, []int{0}, 1))
}

func TestOuterArrayOffsets(t *testing.T) {
	whole, sub, _ := buildColumnSubArray(t)
	maxOffsets := make([]int64, 2)

	n := OuterArrayOffsets(maxOffsets, 1, whole, sub, []int{0})
	assert.Equal(t, 2, n)
	assert.Equal(t, []int64{1, 4}, maxOffsets)
}

func TestOuterArrayIndexes(t *testing.T) {
	whole, sub, _ := buildColumnSubArray(t)
	maxIdxs := make([]int64, 2)

	n := OuterArrayIndexes(maxIdxs, 1, whole, sub, []int{0})
	assert.Equal(t, 2, n)
	assert.Equal(t, []int64{1, 4}, maxIdxs, "c-order logical index equals buffer offset for a contiguous whole array")
}
