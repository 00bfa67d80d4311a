package shapeinfo

// ShapeBuffer allocates a fresh c-order descriptor for shape.
func ShapeBuffer(shape []int64) ShapeInfo {
	return shapeBuffer(shape, OrderC)
}

// ShapeBufferFortran allocates a fresh f-order descriptor for shape.
func ShapeBufferFortran(shape []int64) ShapeInfo {
	return shapeBuffer(shape, OrderF)
}

func shapeBuffer(shape []int64, order byte) ShapeInfo {
	if err := CheckDimensions(shape); err != nil {
		panic(err)
	}
	rank := len(shape)
	info := make(ShapeInfo, ShapeInfoLength(rank))
	info[0] = int64(rank)
	copy(info.Shape(), shape)
	copy(info.Stride(), DefaultStrides(shape, order, 1))
	info.SetExtra(0)
	info.SetOrderRaw(order)
	info.SetOrderAndEws(-1)
	if hasZero(shape) {
		info.SetEmptyFlag(true)
	}
	return info
}

func hasZero(shape []int64) bool {
	for _, d := range shape {
		if d == 0 {
			return true
		}
	}
	return false
}

// NewScalar returns the canonical rank-0 scalar descriptor: length 4,
// [0, extra, 1, OrderC].
func NewScalar() ShapeInfo {
	return ShapeInfo{0, 0, 1, int64(OrderC)}
}

// NewScalarLegacy returns the alternate rank-2 (1,1) scalar form some call
// sites assume: [2, 1, 1, 1, 1, 0, 1, OrderC]. See DESIGN.md for the
// canonical-form decision; this form is kept only for interop with code
// written against it.
func NewScalarLegacy() ShapeInfo {
	return ShapeInfo{2, 1, 1, 1, 1, 0, 1, int64(OrderC)}
}

// ShapeOldScalar writes the 8-word old-scalar form directly:
// [2, 1, 1, 1, 1, extra, 1, order].
func ShapeOldScalar(extra int64, order byte) ShapeInfo {
	return ShapeInfo{2, 1, 1, 1, 1, extra, 1, int64(order)}
}
