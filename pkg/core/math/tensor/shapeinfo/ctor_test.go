package shapeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeBufferCOrder(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	assert.EqualValues(t, OrderC, info.Order())
	assert.Equal(t, []int64{12, 4, 1}, info.Stride())
	assert.Equal(t, int64(1), info.Ews())
	assert.False(t, info.IsEmpty())
}

func TestShapeBufferFortranOrder(t *testing.T) {
	info := ShapeBufferFortran([]int64{2, 3, 4})
	assert.EqualValues(t, OrderF, info.Order())
	assert.Equal(t, []int64{1, 2, 6}, info.Stride())
	assert.Equal(t, int64(1), info.Ews())
}

func TestShapeBufferEmptyFlagOnZeroDim(t *testing.T) {
	info := ShapeBuffer([]int64{2, 0, 4})
	assert.True(t, info.IsEmpty())
}

func TestShapeBufferPanicsOnInvalidShape(t *testing.T) {
	assert.Panics(t, func() {
		ShapeBuffer([]int64{2, -1})
	})
}

func TestNewScalar(t *testing.T) {
	scalar := NewScalar()
	assert.Equal(t, 0, scalar.Rank())
	assert.EqualValues(t, OrderC, scalar.Order())
	assert.Equal(t, int64(1), scalar.Ews())
	assert.Equal(t, int64(1), scalar.Length())
}

func TestNewScalarLegacy(t *testing.T) {
	scalar := NewScalarLegacy()
	assert.Equal(t, 2, scalar.Rank())
	assert.Equal(t, []int64{1, 1}, scalar.Shape())
	assert.Equal(t, int64(1), scalar.Length())
}

func TestShapeOldScalar(t *testing.T) {
	scalar := ShapeOldScalar(7, OrderF)
	assert.Equal(t, int64(7), scalar.Extra())
	assert.EqualValues(t, OrderF, scalar.Order())
}
