package types

import (
	"fmt"
	"sort"

	"github.com/itohio/shapeinfo/pkg/core/math/tensor/shapeinfo"
)

const MAX_DIMS = shapeinfo.MAX_RANK

// Shape represents tensor dimensions.
type Shape []int

// NewShape returns a copy of dims as a Shape.
func NewShape(dims ...int) Shape {
	if len(dims) == 0 {
		return nil
	}
	s := make(Shape, len(dims))
	copy(s, dims)
	return s
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Size returns total number of elements represented by the shape.
// Scalars (len=0) report size 1.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s {
		if dim <= 0 {
			return 0
		}
		size *= dim
	}
	return size
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if s.Rank() != other.Rank() {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Strides computes row-major strides for the shape, delegating to the
// shapeinfo engine's default-stride synthesizer. If dst is provided and long
// enough, the result is written into it; otherwise a new slice is allocated.
func (s Shape) Strides(dst []int) []int {
	if len(s) == 0 {
		return dst[:0]
	}
	wide := toInt64Shape(s)
	strides := shapeinfo.DefaultStrides(wide, shapeinfo.OrderC, 1)
	if dst == nil || cap(dst) < len(strides) {
		dst = make([]int, len(strides))
	}
	dst = dst[:len(strides)]
	for i, v := range strides {
		dst[i] = int(v)
	}
	return dst
}

// IsContiguous reports whether the given strides describe a c-order layout
// with a positive element-wise stride, per the shapeinfo engine's own
// descriptor-level check. A shape with a single non-unity dimension counts
// as contiguous whatever that dimension's (positive) stride is.
func (s Shape) IsContiguous(strides []int) bool {
	if len(s) == 0 {
		return true
	}
	if len(strides) != len(s) {
		return false
	}
	info := shapeinfo.ShapeBuffer(toInt64Shape(s))
	copy(info.Stride(), toInt64Shape(strides))
	info.SetOrderAndEws(-1)
	return info.IsContiguous()
}

func toInt64Shape(s []int) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(v)
	}
	return out
}

// ValidateAxes ensures axes are in range and unique. It sorts axes in-place.
func (s Shape) ValidateAxes(axes []int) error {
	if len(s) == 0 {
		return fmt.Errorf("tensor: empty shape")
	}
	if len(axes) == 0 {
		return nil
	}
	max := len(s)
	seen := make(map[int]struct{}, len(axes))
	for _, axis := range axes {
		if axis < 0 || axis >= max {
			return fmt.Errorf("tensor: axis %d out of range for rank %d", axis, max)
		}
		if _, ok := seen[axis]; ok {
			return fmt.Errorf("tensor: duplicate axis %d", axis)
		}
		seen[axis] = struct{}{}
	}
	sort.Ints(axes)
	return nil
}

// ToSlice returns a copy of the shape as []int.
func (s Shape) ToSlice() []int {
	if len(s) == 0 {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	var static [MAX_DIMS]int
	out := static[:len(s)]
	copy(out[:], s)
	return out
}
