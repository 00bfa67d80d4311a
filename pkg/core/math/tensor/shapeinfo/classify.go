package shapeinfo

// IsVector reports whether shape describes a vector: rank 1, or rank 2 with
// one dimension equal to 1.
func IsVector(shape []int64) bool {
	switch len(shape) {
	case 1:
		return true
	case 2:
		return shape[0] == 1 || shape[1] == 1
	default:
		return false
	}
}

// IsRowVector reports whether info is a vector whose first shape entry is 1.
func (s ShapeInfo) IsRowVector() bool {
	shape := s.Shape()
	return IsVector(shape) && shape[0] == 1
}

// IsColumnVector reports whether info is a vector whose first shape entry is
// not 1.
func (s ShapeInfo) IsColumnVector() bool {
	shape := s.Shape()
	return IsVector(shape) && shape[0] != 1
}

// IsCommonVector reports whether info has exactly one non-unity dimension
// (or has rank > 0 and Length()==1; a rank-0 descriptor reports false).
// When true, nonUnityDim holds the index of that dimension (0 for the
// Length()==1 case).
func (s ShapeInfo) IsCommonVector() (ok bool, nonUnityDim int) {
	rank := s.Rank()
	if rank > 0 && s.Length() == 1 {
		return true, 0
	}
	shape := s.Shape()
	count := 0
	for i, d := range shape {
		if d != 1 {
			count++
			nonUnityDim = i
		}
	}
	return count == 1, nonUnityDim
}

// IsLikeVector reports whether info has exactly one non-unity dimension and
// rank greater than 2.
func (s ShapeInfo) IsLikeVector() (ok bool, nonUnityDim int) {
	shape := s.Shape()
	count := 0
	for i, d := range shape {
		if d != 1 {
			count++
			nonUnityDim = i
		}
	}
	return count == 1 && len(shape) > 2, nonUnityDim
}

// IsMatrix reports whether shape is 2D or less with neither dimension equal
// to 1 (rank 0/1 never qualify since they lack two non-unity dims).
func IsMatrix(shape []int64) bool {
	if len(shape) > 2 {
		return false
	}
	for _, d := range shape {
		if d == 1 {
			return false
		}
	}
	return len(shape) > 0
}

// IsScalar reports whether shape describes a scalar: rank 0, rank 1 with
// extent 1, or rank 2 with both extents 1.
func IsScalar(shape []int64) bool {
	switch len(shape) {
	case 0:
		return true
	case 1:
		return shape[0] == 1
	case 2:
		return shape[0] == 1 && shape[1] == 1
	default:
		return false
	}
}

// IsContiguous reports whether info is c-order with a positive ews.
func (s ShapeInfo) IsContiguous() bool {
	return s.Order() == OrderC && s.Ews() > 0
}

// StrideDescendingCAscendingF reports whether info's strides strictly
// decrease (c-order) or strictly increase (f-order), the shape of a
// "naturally ordered" layout prior to any permutation.
func (s ShapeInfo) StrideDescendingCAscendingF() bool {
	stride := s.Stride()
	rank := len(stride)

	if s.IsRowVector() && rank == 2 && stride[0] == 1 && stride[1] == 1 {
		return true
	}

	switch s.Order() {
	case OrderC:
		for i := 1; i < rank; i++ {
			if stride[i-1] <= stride[i] {
				return false
			}
		}
		return true
	case OrderF:
		for i := 1; i < rank; i++ {
			if stride[i-1] >= stride[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// AreStridesDefault reports whether info's strides are exactly what
// UpdateStrides would produce for its current shape and order.
func (s ShapeInfo) AreStridesDefault() bool {
	rank := s.Rank()
	if rank == 0 {
		return true
	}
	if !s.StrideDescendingCAscendingF() {
		return false
	}
	canonical := DefaultStrides(s.Shape(), s.Order(), 1)
	stride := s.Stride()
	for i := range canonical {
		if stride[i] != canonical[i] {
			return false
		}
	}
	return true
}

// SetEws recomputes the ews word from info's current strides without
// touching order, using the canonical rule: scalar/unity-vector -> 1,
// common-vector -> the stride of its one non-unity dim, contiguous (in the
// descriptor's own order) -> 1, else 0.
func (s ShapeInfo) SetEws(length int64) {
	if length < 0 {
		length = s.Length()
	}
	if length <= 1 {
		s.SetEwsRaw(1)
		return
	}
	if ok, dim := s.IsCommonVector(); ok {
		s.SetEwsRaw(s.Stride()[dim])
		return
	}
	if contiguousInOrder(s, s.Order()) {
		s.SetEwsRaw(1)
		return
	}
	s.SetEwsRaw(0)
}

// SetOrderAndEws derives the canonical (order, ews) pair from info's raw
// strides, using the canonical rule: scalar/unity-vector -> ews=1,
// order preserved; common-vector -> ews=stride of that dim, order
// preserved; c-contiguous -> ews=1, order='c'; f-contiguous -> ews=1,
// order='f'; otherwise ews=0, order preserved. c-contiguity is checked
// first, so c-order wins when both hold.
func (s ShapeInfo) SetOrderAndEws(length int64) {
	rank := s.Rank()
	_ = rank
	if length < 0 {
		length = s.Length()
	}
	if length <= 1 {
		s.SetEwsRaw(1)
		return
	}
	if ok, dim := s.IsCommonVector(); ok {
		s.SetEwsRaw(s.Stride()[dim])
		return
	}

	shape := s.Shape()
	stride := s.Stride()
	n := len(shape)

	if n == 0 || stride[n-1] == 1 || shape[n-1] == 1 {
		correct := int64(1)
		cContiguous := true
		for i := n - 2; i >= 0; i-- {
			correct *= shape[i+1]
			if shape[i] == 1 {
				continue
			}
			if correct != stride[i] {
				cContiguous = false
				break
			}
		}
		if cContiguous {
			s.SetEwsRaw(1)
			s.SetOrderRaw(OrderC)
			return
		}
	}

	if n == 0 || stride[0] == 1 || shape[0] == 1 {
		correct := int64(1)
		fContiguous := true
		for i := 1; i < n; i++ {
			correct *= shape[i-1]
			if shape[i] == 1 {
				continue
			}
			if correct != stride[i] {
				fContiguous = false
				break
			}
		}
		if fContiguous {
			s.SetEwsRaw(1)
			s.SetOrderRaw(OrderF)
			return
		}
	}

	s.SetEwsRaw(0)
	// order is left as-is: neither layout is contiguous.
}

// contiguousInOrder reports whether info's strides match the default
// strides for its shape under the given order.
func contiguousInOrder(s ShapeInfo, order byte) bool {
	shape := s.Shape()
	canonical := DefaultStrides(shape, order, 1)
	stride := s.Stride()
	for i := range canonical {
		if stride[i] != canonical[i] {
			return false
		}
	}
	return true
}
