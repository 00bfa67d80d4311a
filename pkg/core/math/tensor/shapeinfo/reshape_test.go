package shapeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanReshapeContiguousMerge(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	assert.True(t, CanReshape(info, []int64{2, 12}, false))
	assert.True(t, CanReshape(info, []int64{24}, false))
	assert.True(t, CanReshape(info, []int64{6, 4}, false))
}

func TestCanReshapeRejectsElementCountMismatch(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	assert.False(t, CanReshape(info, []int64{2, 3, 5}, false))
}

func TestCanReshapeRejectsNonMergeableStrides(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3})
	TransposeInplace(info) // shape (3,2), stride (1,3): no longer mergeable into one axis

	assert.False(t, CanReshape(info, []int64{6}, false))
}

func TestCanReshapeElidesUnityAxes(t *testing.T) {
	info := ShapeBuffer([]int64{1, 2, 1, 3})
	assert.True(t, CanReshape(info, []int64{2, 3}, false))
}

func TestCanReshapeZeroSizeRejected(t *testing.T) {
	info := shapeBuffer([]int64{0, 3}, OrderC)
	assert.False(t, CanReshape(info, []int64{0, 3}, false))
}

func TestReshapeCProducesExpectedStrides(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	out := make(ShapeInfo, ShapeInfoLength(2))

	ok := ReshapeC(info, []int64{6, 4}, out)
	assert.True(t, ok)
	assert.Equal(t, []int64{6, 4}, out.Shape())
	assert.Equal(t, []int64{4, 1}, out.Stride())
	assert.EqualValues(t, OrderC, out.Order())
	assert.Equal(t, int64(1), out.Ews())
}

func TestReshapeCPreservesExtraAndEws(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3})
	info.SetDataType(5)
	out := make(ShapeInfo, ShapeInfoLength(1))

	ok := ReshapeC(info, []int64{6}, out)
	assert.True(t, ok)
	assert.EqualValues(t, 5, out.DataType())
}

func TestReshapeCRejectsIncompatibleLayout(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3})
	TransposeInplace(info)
	out := make(ShapeInfo, ShapeInfoLength(1))

	ok := ReshapeC(info, []int64{6}, out)
	assert.False(t, ok)
}
