package shapeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermuteReordersShapeAndStride(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	Permute(info, []int{2, 0, 1}, -1)

	assert.Equal(t, []int64{4, 2, 3}, info.Shape())
	assert.Equal(t, []int64{1, 12, 4}, info.Stride())
}

func TestPermuteIdentityIsNoop(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	before := DetachShape(info)

	Permute(info, []int{0, 1, 2}, -1)
	assert.Equal(t, before, info)
}

func TestPermuteScalarIsNoop(t *testing.T) {
	info := ShapeBuffer([]int64{1, 1})
	before := DetachShape(info)

	Permute(info, []int{1, 0}, -1)
	assert.Equal(t, before, info)
}

func TestPermuteInvalidRearrangeLeavesInfoUnmutated(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	before := DetachShape(info)

	Permute(info, []int{0, 0, 2}, -1)
	assert.Equal(t, before, info, "a duplicate-index rearrange must be rejected without mutating info")
}

func TestPermuteRecomputesOrder(t *testing.T) {
	info := ShapeBufferFortran([]int64{2, 3})
	Permute(info, []int{1, 0}, -1)

	assert.EqualValues(t, OrderC, info.Order())
	assert.Equal(t, int64(1), info.Ews())
}

func TestTransposeInplace(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	TransposeInplace(info)

	assert.Equal(t, []int64{4, 3, 2}, info.Shape())
	assert.Equal(t, []int64{1, 4, 12}, info.Stride())
	assert.EqualValues(t, OrderF, info.Order())

	TransposeInplace(info)
	assert.Equal(t, []int64{2, 3, 4}, info.Shape())
	assert.EqualValues(t, OrderC, info.Order())
}
