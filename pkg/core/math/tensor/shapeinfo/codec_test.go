package shapeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeInfoLength(t *testing.T) {
	assert.Equal(t, 4, ShapeInfoLength(0))
	assert.Equal(t, 6, ShapeInfoLength(1))
	assert.Equal(t, 10, ShapeInfoLength(3))
}

func TestShapeInfoByteLength(t *testing.T) {
	assert.EqualValues(t, 80, ShapeInfoByteLength(3))
}

func TestAccessors(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})

	assert.Equal(t, 3, info.Rank())
	assert.Equal(t, []int64{2, 3, 4}, info.Shape())
	assert.Equal(t, []int64{12, 4, 1}, info.Stride())
	assert.EqualValues(t, OrderC, info.Order())
	assert.Equal(t, int64(1), info.Ews())
	assert.Equal(t, int64(24), info.Length())
}

func TestShapeAndStrideAreViews(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3})
	info.Shape()[0] = 5
	assert.Equal(t, int64(5), info[1])

	info.Stride()[0] = 7
	assert.Equal(t, int64(7), info[3])
}

func TestExtraDataTypeAndEmptyFlag(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3})

	info.SetDataType(9)
	assert.EqualValues(t, 9, info.DataType())
	assert.False(t, info.IsEmpty())

	info.SetEmptyFlag(true)
	assert.True(t, info.IsEmpty())
	assert.EqualValues(t, 9, info.DataType(), "empty flag must not disturb the dtype bits")

	info.SetEmptyFlag(false)
	assert.False(t, info.IsEmpty())
}

func TestLengthWithZeroDimension(t *testing.T) {
	info := shapeBuffer([]int64{2, 0, 4}, OrderC)
	assert.Equal(t, int64(0), info.Length())
	assert.True(t, info.IsEmpty())
}

func TestLengthRankZero(t *testing.T) {
	scalar := NewScalar()
	assert.Equal(t, int64(1), scalar.Length())

	scalar.SetEmptyFlag(true)
	assert.Equal(t, int64(0), scalar.Length())
}

func TestDetachShapeIsIndependent(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3})
	detached := DetachShape(info)

	detached.Shape()[0] = 99
	assert.Equal(t, int64(2), info.Shape()[0], "mutating the detached copy must not affect the original")
	assert.Equal(t, int64(99), detached.Shape()[0])
}

func TestCopyShape(t *testing.T) {
	src := ShapeBuffer([]int64{2, 3})
	dst := make(ShapeInfo, len(src))
	CopyShape(dst, src)
	assert.Equal(t, src, dst)
}

func TestEqualsSoft(t *testing.T) {
	a := ShapeBuffer([]int64{2, 3})
	b := ShapeBufferFortran([]int64{2, 3})
	c := ShapeBuffer([]int64{3, 2})

	assert.True(t, EqualsSoft(a, b), "soft equality ignores order/stride")
	assert.False(t, EqualsSoft(a, c))
}

func TestEqualsStrict(t *testing.T) {
	a := ShapeBuffer([]int64{2, 3})
	b := ShapeBuffer([]int64{2, 3})
	c := ShapeBufferFortran([]int64{2, 3})

	assert.True(t, EqualsStrict(a, b))
	assert.False(t, EqualsStrict(a, c))
}

func TestEqualsTypesAndShapesSoft(t *testing.T) {
	a := ShapeBuffer([]int64{2, 3})
	b := ShapeBuffer([]int64{2, 3})
	a.SetDataType(1)
	b.SetDataType(1)
	assert.True(t, EqualsTypesAndShapesSoft(a, b))

	b.SetDataType(2)
	assert.False(t, EqualsTypesAndShapesSoft(a, b))
}
