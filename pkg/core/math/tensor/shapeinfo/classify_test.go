package shapeinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVector(t *testing.T) {
	cases := []struct {
		name  string
		shape []int64
		want  bool
	}{
		{"rank1", []int64{5}, true},
		{"rank2 row", []int64{1, 5}, true},
		{"rank2 col", []int64{5, 1}, true},
		{"rank2 matrix", []int64{3, 5}, false},
		{"rank3", []int64{1, 1, 5}, false},
		{"rank0", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsVector(c.shape))
		})
	}
}

func TestIsRowAndColumnVector(t *testing.T) {
	row := ShapeBuffer([]int64{1, 5})
	col := ShapeBuffer([]int64{5, 1})

	assert.True(t, row.IsRowVector())
	assert.False(t, row.IsColumnVector())

	assert.True(t, col.IsColumnVector())
	assert.False(t, col.IsRowVector())
}

func TestIsCommonVector(t *testing.T) {
	info := ShapeBuffer([]int64{1, 5, 1})
	ok, dim := info.IsCommonVector()
	assert.True(t, ok)
	assert.Equal(t, 1, dim)

	scalarLike := ShapeBuffer([]int64{1, 1, 1})
	ok, dim = scalarLike.IsCommonVector()
	assert.True(t, ok)
	assert.Equal(t, 0, dim)

	matrix := ShapeBuffer([]int64{3, 5})
	ok, _ = matrix.IsCommonVector()
	assert.False(t, ok)
}

func TestIsLikeVector(t *testing.T) {
	info := ShapeBuffer([]int64{1, 1, 5})
	ok, dim := info.IsLikeVector()
	assert.True(t, ok)
	assert.Equal(t, 2, dim)

	rank2 := ShapeBuffer([]int64{1, 5})
	ok, _ = rank2.IsLikeVector()
	assert.False(t, ok, "rank must exceed 2")
}

func TestIsMatrix(t *testing.T) {
	assert.True(t, IsMatrix([]int64{3, 5}))
	assert.False(t, IsMatrix([]int64{1, 5}))
	assert.False(t, IsMatrix([]int64{3, 5, 2}))
	assert.False(t, IsMatrix(nil))
}

func TestIsScalar(t *testing.T) {
	assert.True(t, IsScalar(nil))
	assert.True(t, IsScalar([]int64{1}))
	assert.True(t, IsScalar([]int64{1, 1}))
	assert.False(t, IsScalar([]int64{2}))
	assert.False(t, IsScalar([]int64{1, 2}))
}

func TestIsContiguous(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3})
	assert.True(t, info.IsContiguous())

	info.SetOrderRaw(OrderF)
	assert.False(t, info.IsContiguous())
}

func TestStrideDescendingCAscendingF(t *testing.T) {
	c := ShapeBuffer([]int64{2, 3, 4})
	assert.True(t, c.StrideDescendingCAscendingF())

	f := ShapeBufferFortran([]int64{2, 3, 4})
	assert.True(t, f.StrideDescendingCAscendingF())

	mixed := DetachShape(c)
	mixed.Stride()[0], mixed.Stride()[1] = mixed.Stride()[1], mixed.Stride()[0]
	assert.False(t, mixed.StrideDescendingCAscendingF())
}

func TestAreStridesDefault(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	assert.True(t, info.AreStridesDefault())

	info.Stride()[0] = 999
	assert.False(t, info.AreStridesDefault())
}

func TestSetEws(t *testing.T) {
	info := ShapeBuffer([]int64{2, 3, 4})
	info.SetEws(-1)
	assert.Equal(t, int64(1), info.Ews())

	vec := ShapeBuffer([]int64{1, 5, 1})
	vec.SetEws(-1)
	assert.Equal(t, vec.Stride()[1], vec.Ews())

	nonContig := DetachShape(info)
	nonContig.Stride()[0] = 999
	nonContig.SetEws(-1)
	assert.Equal(t, int64(0), nonContig.Ews())
}

func TestSetOrderAndEwsCContiguous(t *testing.T) {
	info := DetachShape(ShapeBuffer([]int64{2, 3, 4}))
	info.SetOrderRaw(orderBoth)
	info.SetOrderAndEws(-1)
	assert.EqualValues(t, OrderC, info.Order())
	assert.Equal(t, int64(1), info.Ews())
}

func TestSetOrderAndEwsFContiguous(t *testing.T) {
	info := DetachShape(ShapeBufferFortran([]int64{2, 3, 4}))
	info.SetOrderRaw(orderBoth)
	info.SetOrderAndEws(-1)
	assert.EqualValues(t, OrderF, info.Order())
	assert.Equal(t, int64(1), info.Ews())
}

func TestSetOrderAndEwsNeitherContiguous(t *testing.T) {
	info := DetachShape(ShapeBuffer([]int64{2, 3, 4}))
	info.Stride()[0], info.Stride()[1] = info.Stride()[1], info.Stride()[0]
	info.SetOrderRaw(OrderC)
	info.SetOrderAndEws(-1)
	assert.Equal(t, int64(0), info.Ews())
	assert.EqualValues(t, OrderC, info.Order(), "order is left untouched when neither layout is contiguous")
}

func TestSetOrderAndEwsLengthOne(t *testing.T) {
	info := ShapeBuffer([]int64{1, 1})
	info.SetOrderAndEws(-1)
	assert.Equal(t, int64(1), info.Ews())
}
