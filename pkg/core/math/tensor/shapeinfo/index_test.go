package shapeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex2CoordsC(t *testing.T) {
	shape := []int64{2, 3, 4}
	coords := make([]int64, 3)

	Index2Coords(shape, 0, coords, OrderC)
	assert.Equal(t, []int64{0, 0, 0}, coords)

	Index2Coords(shape, 23, coords, OrderC)
	assert.Equal(t, []int64{1, 2, 3}, coords)

	Index2Coords(shape, 5, coords, OrderC)
	assert.Equal(t, []int64{0, 1, 1}, coords)
}

func TestIndex2CoordsF(t *testing.T) {
	shape := []int64{2, 3, 4}
	coords := make([]int64, 3)

	Index2Coords(shape, 23, coords, OrderF)
	assert.Equal(t, []int64{1, 2, 3}, coords)

	Index2Coords(shape, 1, coords, OrderF)
	assert.Equal(t, []int64{1, 0, 0}, coords)
}

func TestCoords2IndexRoundTrip(t *testing.T) {
	shape := []int64{2, 3, 4}
	coords := make([]int64, 3)

	for _, order := range []byte{OrderC, OrderF} {
		for idx := int64(0); idx < 24; idx++ {
			Index2Coords(shape, idx, coords, order)
			got := Coords2Index(shape, coords, order)
			assert.Equal(t, idx, got, "order=%d idx=%d", order, idx)
		}
	}
}

func TestGetOffsetSkipsUnitDims(t *testing.T) {
	shape := []int64{1, 3, 4}
	stride := []int64{999, 4, 1}
	indices := []int64{7, 1, 2}

	offset := GetOffset(0, shape, stride, indices, 3)
	assert.Equal(t, int64(1*4+2*1), offset, "the unit dimension's stride/index must not contribute")
}

func TestGetIndexOffsetContiguousFastPath(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	for idx := int64(0); idx < 24; idx++ {
		assert.Equal(t, idx, GetIndexOffset(idx, info, 24))
	}
}

func TestGetIndexOffsetNonContiguous(t *testing.T) {
	info := DetachShape(ShapeBuffer([]int64{2, 3}))
	info.Stride()[0], info.Stride()[1] = info.Stride()[1], info.Stride()[0]
	info.SetEwsRaw(0)

	coords := make([]int64, 2)
	for idx := int64(0); idx < 6; idx++ {
		Index2Coords(info.Shape(), idx, coords, OrderC)
		want := GetOffset(0, info.Shape(), info.Stride(), coords, 2)
		assert.Equal(t, want, GetIndexOffset(idx, info, 6))
	}
}

func TestGetIndexOrderOffsetMatchesOrderExplicitly(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	for idx := int64(0); idx < 24; idx++ {
		assert.Equal(t, GetIndexOffset(idx, info, 24), GetIndexOrderOffset(idx, info, 24, OrderC))
	}
}
