package shapeinfo

import "github.com/itohio/shapeinfo/pkg/logger"

// Permute rewrites info's shape and stride in place according to
// rearrange, a length-Rank() permutation of {0..Rank()-1}, then
// re-derives order/ews via SetOrderAndEws. length may be passed as -1 to
// have it computed from info's shape.
//
// If length==1 or rearrange is already the identity permutation, info is
// left unchanged. An invalid rearrange (an index <0 or >=rank, a repeated
// index, or more entries than rank, checked via CheckArrangeArray) is a
// non-fatal precondition violation: a single
// diagnostic is logged and info is left unmutated.
func Permute(info ShapeInfo, rearrange []int, length int64) {
	if length == -1 {
		length = info.Length()
	}
	if length == 1 {
		return
	}

	rank := info.Rank()
	necessary := false
	for i, r := range rearrange {
		if r != i {
			necessary = true
			break
		}
	}
	if !necessary {
		return
	}

	if err := CheckArrangeArray(rearrange, rank); err != nil {
		logger.Log.Warn().Err(err).Msg("shapeinfo: Permute: rearrange indexes are incorrect, skipping")
		return
	}

	var shapeBuf, strideBuf [MAX_RANK]int64
	oldShape := shapeBuf[:rank]
	oldStride := strideBuf[:rank]
	copy(oldShape, info.Shape())
	copy(oldStride, info.Stride())

	newShape := info.Shape()
	newStride := info.Stride()
	for i, r := range rearrange {
		newShape[i] = oldShape[r]
		newStride[i] = oldStride[r]
	}

	info.SetOrderAndEws(length)
}

// TransposeInplace reverses info's shape and stride and flips the trailing
// order byte between c and f. It does not touch ews.
func TransposeInplace(info ShapeInfo) {
	shape := info.Shape()
	stride := info.Stride()
	for i, j := 0, len(shape)-1; i < j; i, j = i+1, j-1 {
		shape[i], shape[j] = shape[j], shape[i]
		stride[i], stride[j] = stride[j], stride[i]
	}
	if info.Order() == OrderC {
		info.SetOrderRaw(OrderF)
	} else {
		info.SetOrderRaw(OrderC)
	}
}
