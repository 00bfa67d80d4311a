package shapeinfo

// CanReshape reports whether newShape can be realized as a strided view of
// the buffer described by oldInfo, without copying, when the resulting
// view is interpreted in the given order. It is pure control flow — a
// false return is a normal signal to the caller to copy instead, not an
// error (spec.md §7).
func CanReshape(oldInfo ShapeInfo, newShape []int64, isFOrder bool) bool {
	oldShapeFull := oldInfo.Shape()
	oldStrideFull := oldInfo.Stride()

	// Step 1: project away unity axes from the old shape; their strides
	// carry no information since they do not affect the logical layout.
	var dimsBuf, stridesBuf [MAX_RANK]int64
	oldDims := dimsBuf[:0]
	oldStrides := stridesBuf[:0]
	for i, d := range oldShapeFull {
		if d != 1 {
			oldDims = append(oldDims, d)
			oldStrides = append(oldStrides, oldStrideFull[i])
		}
	}
	oldnd := len(oldDims)

	np := int64(1)
	for _, d := range newShape {
		np *= d
	}
	op := int64(1)
	for _, d := range oldDims {
		op *= d
	}
	if np != op {
		return false
	}
	if np == 0 {
		// Step 3: zero-size old array, do not attempt.
		return false
	}

	newRank := len(newShape)
	oldStart, oldStop, newStart, newStop := 0, 1, 0, 1

	for newStart < newRank && oldStart < oldnd {
		np = newShape[newStart]
		op = oldDims[oldStart]

		for np != op {
			if np < op {
				np *= newShape[newStop]
				newStop++
			} else {
				op *= oldDims[oldStop]
				oldStop++
			}
		}

		for ok := oldStart; ok < oldStop-1; ok++ {
			if isFOrder {
				if oldStrides[ok+1] != oldDims[ok]*oldStrides[ok] {
					return false
				}
			} else {
				if oldStrides[ok] != oldDims[ok+1]*oldStrides[ok+1] {
					return false
				}
			}
		}

		newStart = newStop
		newStop++
		oldStart = oldStop
		oldStop++
	}

	return true
}

// ReshapeC performs the same match-and-combine walk as CanReshape directly
// against oldShapeInfo's own (possibly unity-bearing) shape, writing
// [newRank, newShape..., newStrides..., extra, ews, order] into out on
// success. order, ews and the extra word are copied verbatim from the
// source. Returns false (out left unspecified) when the reshape cannot be
// expressed as a strided view.
func ReshapeC(oldShapeInfo ShapeInfo, newShape []int64, out ShapeInfo) bool {
	oldRank := oldShapeInfo.Rank()
	newRank := len(newShape)
	oldShape := oldShapeInfo.Shape()
	oldStride := oldShapeInfo.Stride()

	out[0] = int64(newRank)
	copy(out.Shape(), newShape)
	newStride := out.Stride()

	oldStart, oldStop, newStart, newStop := 0, 1, 0, 1

	for newStart < newRank && oldStart < oldRank {
		newDim := newShape[newStart]
		oldDim := oldShape[oldStart]

		for newDim != oldDim && newDim > 0 && oldDim > 0 {
			if newDim < oldDim {
				newDim *= newShape[newStop]
				newStop++
			} else {
				oldDim *= oldShape[oldStop]
				oldStop++
			}
		}

		for step, i := 1, oldStart; i < oldStop-1; i++ {
			if oldShape[i] == 1 {
				continue
			}
			for i+step < oldRank && oldShape[i+step] == 1 {
				step++
			}
			if i+step < oldRank && oldStride[i] != oldShape[i+step]*oldStride[i+step] {
				return false
			}
		}

		newStride[newStop-1] = oldStride[oldStop-1]
		for i := newStop - 1; i > newStart; i-- {
			newStride[i-1] = newStride[i] * newShape[i]
		}

		newStart = newStop
		newStop++
		oldStart = oldStop
		oldStop++
	}

	out.SetOrderRaw(oldShapeInfo.Order())
	out.SetEwsRaw(oldShapeInfo.Ews())
	out.SetExtra(oldShapeInfo.Extra())

	return true
}
