package shapeinfo

// Index2Coords decomposes a logical index into per-dimension coordinates
// for shape under order. c-order divides by the running suffix product
// from the left; f-order divides by the running prefix product from the
// right. A dimension of extent 1 always yields coordinate 0.
func Index2Coords(shape []int64, index int64, coords []int64, order byte) {
	rank := len(shape)
	arrLen := int64(1)
	for _, d := range shape {
		arrLen *= d
	}

	if order == OrderF {
		for i := rank - 1; i >= 0; i-- {
			if shape[i] == 0 {
				coords[i] = 0
				continue
			}
			arrLen /= shape[i]
			if arrLen > 0 && shape[i] > 1 {
				coords[i] = index / arrLen
				index %= arrLen
			} else {
				coords[i] = 0
			}
		}
		return
	}

	for i := 0; i < rank; i++ {
		if shape[i] == 0 {
			coords[i] = 0
			continue
		}
		arrLen /= shape[i]
		if arrLen > 0 && shape[i] > 1 {
			coords[i] = index / arrLen
			index %= arrLen
		} else {
			coords[i] = 0
		}
	}
}

// Coords2Index recombines per-dimension coordinates into a logical index
// for shape under order: the strided sum using the running product of
// shape in that order (the array's own logical layout, not its buffer
// strides).
func Coords2Index(shape []int64, coords []int64, order byte) int64 {
	rank := len(shape)
	var index int64
	if order == OrderF {
		stride := int64(1)
		for i := 0; i < rank; i++ {
			index += coords[i] * stride
			stride *= shape[i]
		}
		return index
	}
	stride := int64(1)
	for i := rank - 1; i >= 0; i-- {
		index += coords[i] * stride
		stride *= shape[i]
	}
	return index
}

// GetOffset computes baseOffset + sum(indices[i]*stride[i]) over dimensions
// whose extent is not 1, so broadcasting callers may pass any index for a
// unit dimension without it perturbing the offset.
func GetOffset(baseOffset int64, shape, stride, indices []int64, rank int) int64 {
	offset := baseOffset
	for i := 0; i < rank; i++ {
		if shape[i] != 1 {
			offset += indices[i] * stride[i]
		}
	}
	return offset
}

// GetIndexOffset maps a logical index into info's logical iteration order
// to a buffer offset. When info is c-order with a positive ews this is the
// O(1) fast path index*ews; otherwise it walks the shape outer to inner,
// splitting index by the running interior length.
func GetIndexOffset(index int64, info ShapeInfo, arrLen int64) int64 {
	rank := info.Rank()
	ews := info.Ews()
	if ews > 0 && info.Order() == OrderC {
		if ews == 1 {
			return index
		}
		return ews * index
	}

	shape := info.Shape()
	stride := info.Stride()
	var offset int64
	for i := 0; i < rank; i++ {
		if shape[i] == 0 {
			continue
		}
		arrLen /= shape[i]
		if arrLen > 0 && shape[i] > 1 {
			offset += (index / arrLen) * stride[i]
			index %= arrLen
		}
	}
	return offset
}

// GetIndexOffsetUint32 is the 32-bit fast path of GetIndexOffset, for
// callers who have proven arrLen and every stride fit in a uint32.
func GetIndexOffsetUint32(index uint32, shape, stride []uint32, ews uint32, order byte, arrLen uint32) uint32 {
	rank := len(shape)
	if ews > 0 && order == OrderC {
		if ews == 1 {
			return index
		}
		return ews * index
	}

	var offset uint32
	for i := 0; i < rank; i++ {
		if shape[i] == 0 {
			continue
		}
		arrLen /= shape[i]
		if arrLen > 0 && shape[i] > 1 {
			offset += (index / arrLen) * stride[i]
			index %= arrLen
		}
	}
	return offset
}

// GetIndexOrderOffset is like GetIndexOffset but explicitly parameterized
// by order and without the ews shortcut: it always walks the shape, outer
// to inner for c-order and inner to outer for f-order.
func GetIndexOrderOffset(index int64, info ShapeInfo, arrLen int64, order byte) int64 {
	rank := info.Rank()
	shape := info.Shape()
	stride := info.Stride()
	var offset int64

	if order == OrderC {
		for i := 0; i < rank; i++ {
			if shape[i] == 0 {
				continue
			}
			arrLen /= shape[i]
			if arrLen > 0 && shape[i] > 1 {
				offset += (index / arrLen) * stride[i]
				index %= arrLen
			}
		}
		return offset
	}

	for i := rank - 1; i >= 0; i-- {
		if shape[i] == 0 {
			continue
		}
		arrLen /= shape[i]
		if arrLen > 0 && shape[i] > 1 {
			offset += (index / arrLen) * stride[i]
			index %= arrLen
		}
	}
	return offset
}
