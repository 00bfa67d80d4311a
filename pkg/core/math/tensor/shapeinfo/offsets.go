package shapeinfo

import "sync"

// parallelThreshold is the minimum per-pass element count before
// CalcOffsets2/CalcOffsets3 bother fanning independent passes out onto
// goroutines; below it the dispatch overhead would dominate the work.
const parallelThreshold = 1 << 16

// CalcOffsetsFromDims runs the per-dimension odometer directly over a
// (shape, strides) pair rather than a full descriptor: offsets[0]=0, then
// each subsequent offset is produced by advancing the innermost (c order)
// or outermost (f order) non-unity axis and unwinding borrowed dimensions
// on rollover. order defaults to c-order semantics for anything other than
// OrderF.
func CalcOffsetsFromDims(shape, strides []int64, offsets []int64, order byte) {
	rank := len(shape)
	if rank == 0 {
		offsets[0] = 0
		return
	}

	offsets[0] = 0
	idx := make([]int64, rank)
	offsetPerDim := make([]int64, rank)
	for k := 0; k < rank; k++ {
		offsetPerDim[k] = (shape[k] - 1) * strides[k]
	}

	i := int64(1)
	var init int64

	if order == OrderF {
		j := 0
		for j < rank {
			if shape[j] == 1 {
				j++
				continue
			}
			if j == 0 {
				for l := int64(1); l < shape[j]; l++ {
					offsets[i] = offsets[i-1] + strides[j]
					i++
				}
				j++
			} else if idx[j] < shape[j]-1 {
				init += strides[j]
				offsets[i] = init
				i++
				idx[j]++
				j = 0
			} else {
				init -= offsetPerDim[j]
				idx[j] = 0
				j++
			}
		}
		return
	}

	j := rank - 1
	for j >= 0 {
		if shape[j] == 1 {
			j--
			continue
		}
		if j == rank-1 {
			for l := int64(1); l < shape[j]; l++ {
				offsets[i] = offsets[i-1] + strides[j]
				i++
			}
			j--
		} else if idx[j] < shape[j]-1 {
			init += strides[j]
			offsets[i] = init
			i++
			idx[j]++
			j = rank - 1
		} else {
			init -= offsetPerDim[j]
			idx[j] = 0
			j--
		}
	}
}

// CalcOffsets fills offsets (length info.Length()) with the buffer offset
// of every logical element of info, visited in the requested order. When
// info's own ews is positive and either its order matches the requested
// order or it has at most one non-unity dimension (so order is moot), the
// O(1) offsets[e]=e*ews path is used; otherwise the per-dimension odometer
// runs against info's actual strides.
func CalcOffsets(info ShapeInfo, offsets []int64, order byte) {
	ews := info.Ews()
	if ews > 0 {
		sameOrder := order == info.Order()
		if !sameOrder {
			nonUnity := 0
			for _, d := range info.Shape() {
				if d != 1 {
					nonUnity++
				}
			}
			sameOrder = nonUnity == 1
		}
		if sameOrder {
			offsets[0] = 0
			length := info.Length()
			var pos int64 = 1
			for pos < length {
				offsets[pos] = offsets[pos-1] + ews
				pos++
			}
			return
		}
	}

	CalcOffsetsFromDims(info.Shape(), info.Stride(), offsets, order)
}

// identityOffsets reports whether a pass can be skipped entirely because
// the operand's own element-wise-stride walk already matches the
// requested order (stride==1 is the common case callers special-case as
// "just use the logical index directly").
func identityOffsets(info ShapeInfo, dominant byte, shapesIdentical bool) bool {
	return info.Ews() == 1 && info.Order() == dominant && (dominant == OrderC || shapesIdentical)
}

// CalcOffsets2 computes offset vectors for two co-iterated arrays. Either
// result is nil when that operand's ews==1 walk already agrees with the
// chosen order (x's, unless x doesn't qualify and y does) — callers then
// use the logical index directly for that operand instead of indexing the
// nil slice. Independent passes run concurrently once the array is large
// enough to make that worthwhile.
func CalcOffsets2(xInfo ShapeInfo, yInfo ShapeInfo, order byte) (xOffsets, yOffsets []int64) {
	shapesSame := EqualsSoft(xInfo, yInfo)
	length := xInfo.Length()

	xID := identityOffsets(xInfo, order, shapesSame)
	yID := identityOffsets(yInfo, order, shapesSame)

	switch {
	case xID && yID:
		return nil, nil
	case xID:
		yOffsets = make([]int64, length)
		CalcOffsets(yInfo, yOffsets, order)
		return nil, yOffsets
	case yID:
		xOffsets = make([]int64, length)
		CalcOffsets(xInfo, xOffsets, order)
		return xOffsets, nil
	}

	xOffsets = make([]int64, length)
	yOffsets = make([]int64, length)
	if length >= parallelThreshold {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); CalcOffsets(xInfo, xOffsets, order) }()
		go func() { defer wg.Done(); CalcOffsets(yInfo, yOffsets, order) }()
		wg.Wait()
	} else {
		CalcOffsets(xInfo, xOffsets, order)
		CalcOffsets(yInfo, yOffsets, order)
	}
	return xOffsets, yOffsets
}

// CalcOffsets3 is CalcOffsets2 generalized to three co-iterated arrays
// (the common x,y -> z elementwise-op shape), with the same nil-means-
// identity convention per operand and the same concurrency gate.
func CalcOffsets3(xInfo, yInfo, zInfo ShapeInfo, order byte) (xOffsets, yOffsets, zOffsets []int64) {
	length := xInfo.Length()
	xySame := EqualsSoft(xInfo, yInfo)
	xzSame := EqualsSoft(xInfo, zInfo)
	yzSame := EqualsSoft(yInfo, zInfo)

	xID := identityOffsets(xInfo, order, xySame && xzSame)
	yID := identityOffsets(yInfo, order, xySame && yzSame)
	zID := identityOffsets(zInfo, order, xzSame && yzSame)

	needed := make([]struct {
		info ShapeInfo
		out  *[]int64
	}, 0, 3)
	if !xID {
		xOffsets = make([]int64, length)
		needed = append(needed, struct {
			info ShapeInfo
			out  *[]int64
		}{xInfo, &xOffsets})
	}
	if !yID {
		yOffsets = make([]int64, length)
		needed = append(needed, struct {
			info ShapeInfo
			out  *[]int64
		}{yInfo, &yOffsets})
	}
	if !zID {
		zOffsets = make([]int64, length)
		needed = append(needed, struct {
			info ShapeInfo
			out  *[]int64
		}{zInfo, &zOffsets})
	}

	if length >= parallelThreshold && len(needed) > 1 {
		var wg sync.WaitGroup
		wg.Add(len(needed))
		for _, n := range needed {
			n := n
			go func() {
				defer wg.Done()
				CalcOffsets(n.info, *n.out, order)
			}()
		}
		wg.Wait()
	} else {
		for _, n := range needed {
			CalcOffsets(n.info, *n.out, order)
		}
	}
	return xOffsets, yOffsets, zOffsets
}
