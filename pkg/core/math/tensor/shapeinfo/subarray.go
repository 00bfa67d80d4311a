package shapeinfo

// MaxIndToMinInd projects per-dimension coordinates from the outer ("max")
// array to the inner ("min") array obtained by holding dimsToExclude fixed
// (sorted ascending). When maxShapeInfo and minShapeInfo share rank,
// dimsToExclude names the held dimensions directly and every other
// coordinate carries through (reduced modulo the min extent, broadcast
// style); when ranks differ, dimsToExclude selects which of the max array's
// axes were dropped to form the min array. dimsLen==-1 means "the first
// maxRank-minRank axes", i.e. dimsToExclude is {0,1,...,diff-1}.
func MaxIndToMinInd(maxIdxs, minIdxs []int64, maxShapeInfo, minShapeInfo ShapeInfo, dimsToExclude []int, dimsLen int) {
	maxRank := maxShapeInfo.Rank()
	minRank := minShapeInfo.Rank()
	minShape := minShapeInfo.Shape()

	if dimsLen == -1 {
		dimsLen = maxRank - minRank
	}

	reduce := func(maxVal, minExtent int64) int64 {
		switch {
		case maxVal > minExtent:
			return maxVal % minExtent
		case maxVal == minExtent:
			return 0
		default:
			return maxVal
		}
	}

	if maxRank == minRank {
		if dimsToExclude == nil {
			for i := 0; i < maxRank; i++ {
				if i < dimsLen {
					minIdxs[i] = maxIdxs[i]
				} else {
					minIdxs[i] = reduce(maxIdxs[i], minShape[i])
				}
			}
			return
		}
		dim := 0
		for i := 0; i < maxRank; i++ {
			if dim < dimsLen && dimsToExclude[dim] == i {
				minIdxs[i] = maxIdxs[i]
				dim++
				continue
			}
			minIdxs[i] = reduce(maxIdxs[i], minShape[i])
		}
		return
	}

	if dimsToExclude == nil {
		for i := 0; i < minRank; i++ {
			minIdxs[i] = reduce(maxIdxs[i+dimsLen], minShape[i])
		}
		return
	}

	minI, dim := 0, 0
	for maxI := 0; maxI < maxRank; maxI++ {
		if dim < dimsLen && dimsToExclude[dim] == maxI {
			dim++
			continue
		}
		minIdxs[minI] = reduce(maxIdxs[maxI], minShape[minI])
		minI++
	}
}

// SubArrayIndex computes the logical min-array index corresponding to the
// absolute logical maxIdx into the max array.
func SubArrayIndex(maxIdx int64, maxShapeInfo, minShapeInfo ShapeInfo, dimsToExclude []int, dimsLen int) int64 {
	var maxIdxsBuf, minIdxsBuf [MAX_RANK]int64
	maxRank := maxShapeInfo.Rank()
	minRank := minShapeInfo.Rank()
	maxIdxs := maxIdxsBuf[:maxRank]
	minIdxs := minIdxsBuf[:minRank]

	Index2Coords(maxShapeInfo.Shape(), maxIdx, maxIdxs, maxShapeInfo.Order())
	MaxIndToMinInd(maxIdxs, minIdxs, maxShapeInfo, minShapeInfo, dimsToExclude, dimsLen)

	return Coords2Index(minShapeInfo.Shape(), minIdxs, minShapeInfo.Order())
}

// SubArrayOffset computes the min-array buffer offset corresponding to the
// absolute logical maxIdx into the max array.
func SubArrayOffset(maxIdx int64, maxShapeInfo, minShapeInfo ShapeInfo, dimsToExclude []int, dimsLen int) int64 {
	var maxIdxsBuf, minIdxsBuf [MAX_RANK]int64
	maxRank := maxShapeInfo.Rank()
	minRank := minShapeInfo.Rank()
	maxIdxs := maxIdxsBuf[:maxRank]
	minIdxs := minIdxsBuf[:minRank]

	Index2Coords(maxShapeInfo.Shape(), maxIdx, maxIdxs, maxShapeInfo.Order())
	MaxIndToMinInd(maxIdxs, minIdxs, maxShapeInfo, minShapeInfo, dimsToExclude, dimsLen)

	return GetOffset(0, minShapeInfo.Shape(), minShapeInfo.Stride(), minIdxs, minRank)
}

// outerIndicesAndIncrement computes the odometer starting coordinates and
// per-axis increment table shared by OuterArrayIndexes and
// OuterArrayOffsets: excluded axes (or, with nil dimsToExclude, the leading
// rankMax-rankMin axes) start at 0 with increment 1; axes whose extent
// matches between min and max get increment 0; others get increment = min
// extent.
func outerIndicesAndIncrement(minIdx int64, maxShapeInfo, minShapeInfo ShapeInfo, dimsToExclude []int) (indices, increment []int64, rankMax int) {
	rankMin := minShapeInfo.Rank()
	rankMax = maxShapeInfo.Rank()
	diff := rankMax - rankMin

	var idxBuf, incBuf [MAX_RANK]int64
	indices = idxBuf[:rankMax]
	increment = incBuf[:rankMax]

	Index2Coords(minShapeInfo.Shape(), minIdx, indices[:rankMin], minShapeInfo.Order())
	// Index2Coords wrote into indices[:rankMin]; relocate below.
	minCoords := make([]int64, rankMin)
	copy(minCoords, indices[:rankMin])

	maxShape := maxShapeInfo.Shape()
	minShape := minShapeInfo.Shape()

	if dimsToExclude == nil {
		minI, maxI := rankMin-1, rankMax-1
		for ; maxI >= diff; maxI, minI = maxI-1, minI-1 {
			if maxShape[maxI] == minShape[minI] {
				increment[maxI] = 0
			} else {
				increment[maxI] = minShape[minI]
			}
			indices[maxI] = minCoords[minI]
		}
		for maxI := 0; maxI < diff; maxI++ {
			increment[maxI] = 1
			indices[maxI] = 0
		}
		return indices, increment, rankMax
	}

	n := diff - 1
	minI := rankMin - 1
	for maxI := rankMax - 1; maxI >= 0; maxI-- {
		if n >= 0 && dimsToExclude[n] == maxI {
			increment[maxI] = 1
			indices[maxI] = 0
			n--
			continue
		}
		if maxShape[maxI] == minShape[minI] {
			increment[maxI] = 0
		} else {
			increment[maxI] = minShape[minI]
		}
		indices[maxI] = minCoords[minI]
		minI--
	}
	return indices, increment, rankMax
}

// OuterArrayOffsets enumerates, into maxOffsets, the buffer offsets of
// every element of the max array that projects onto the logical minIdx of
// the min array, and returns how many it wrote.
func OuterArrayOffsets(maxOffsets []int64, minIdx int64, maxShapeInfo, minShapeInfo ShapeInfo, dimsToExclude []int) int {
	indices, increment, rankMax := outerIndicesAndIncrement(minIdx, maxShapeInfo, minShapeInfo, dimsToExclude)
	maxShape := maxShapeInfo.Shape()
	maxStride := maxShapeInfo.Stride()

	n := 0
	maxOffsets[n] = GetOffset(0, maxShape, maxStride, indices, rankMax)
	n++

	maxI := rankMax - 1
	for maxI >= 0 {
		var step int
		if increment[maxI] != 0 {
			indices[maxI] += increment[maxI]
			if indices[maxI] >= maxShape[maxI] {
				indices[maxI] %= increment[maxI]
				step = -1
			} else {
				maxOffsets[n] = GetOffset(0, maxShape, maxStride, indices, rankMax)
				n++
				step = rankMax - 1 - maxI
			}
		} else if maxI == rankMax-1 {
			step = -1
		}
		maxI += step
	}
	return n
}

// OuterArrayIndexes is OuterArrayOffsets's logical-index counterpart: it
// enumerates the logical indices (in the max array's own order) rather
// than buffer offsets.
func OuterArrayIndexes(maxIdxs []int64, minIdx int64, maxShapeInfo, minShapeInfo ShapeInfo, dimsToExclude []int) int {
	indices, increment, rankMax := outerIndicesAndIncrement(minIdx, maxShapeInfo, minShapeInfo, dimsToExclude)
	maxShape := maxShapeInfo.Shape()

	n := 0
	maxIdxs[n] = Coords2Index(maxShape, indices, maxShapeInfo.Order())
	n++

	maxI := rankMax - 1
	for maxI >= 0 {
		var step int
		if increment[maxI] != 0 {
			indices[maxI] += increment[maxI]
			if indices[maxI] >= maxShape[maxI] {
				indices[maxI] %= increment[maxI]
				step = -1
			} else {
				maxIdxs[n] = Coords2Index(maxShape, indices, maxShapeInfo.Order())
				n++
				step = rankMax - 1 - maxI
			}
		} else if maxI == rankMax-1 {
			step = -1
		}
		maxI += step
	}
	return n
}

// CalcSubArrShapeAndOffsets evaluates the shape shared by every sub-array
// obtained from wholeShapeInfo by holding the dimsToExclude axes fixed, and
// the distinct buffer offset of each such sub-array. dimsToExclude must be
// sorted ascending. If dimsSize==rank or dimsSize==0 there is exactly one
// sub-array, equal to the whole array, at offset 0. keepUnitiesInShape
// controls whether the held dimensions remain in subArrShapeInfo's shape
// as extent-1 axes or are collapsed out. subArrOffsets must be sized to
// the number of sub-arrays, i.e. the product of the held dimensions'
// extents; callers that already track that count as numOfSubArrs use it
// only to size this slice.
func CalcSubArrShapeAndOffsets(wholeShapeInfo ShapeInfo, dimsToExclude []int, subArrShapeInfo ShapeInfo, subArrOffsets []int64, keepUnitiesInShape bool) {
	rank := wholeShapeInfo.Rank()
	dimsSize := len(dimsToExclude)

	if dimsSize == rank || dimsSize == 0 {
		copy(subArrShapeInfo, wholeShapeInfo)
		subArrOffsets[0] = 0
		return
	}

	out := DetachShape(wholeShapeInfo)
	outShape := out.Shape()

	var shapeBuf, strideBuf [MAX_RANK]int64
	heldShape := shapeBuf[:dimsSize]
	heldStride := strideBuf[:dimsSize]

	subArrRank := rank - dimsSize
	if keepUnitiesInShape {
		subArrRank = rank
	}
	var noUnitiesBuf [MAX_RANK]int64
	var shapeNoUnities []int64
	if !keepUnitiesInShape {
		shapeNoUnities = noUnitiesBuf[:subArrRank]
	}

	subArrLen := int64(1)
	outStride := out.Stride()
	k, j := subArrRank-1, dimsSize-1
	for i := rank - 1; i >= 0; i-- {
		if j >= 0 && i == dimsToExclude[j] {
			heldStride[j] = outStride[i]
			heldShape[j] = outShape[i]
			outShape[i] = 1
			j--
		} else {
			subArrLen *= outShape[i]
			if !keepUnitiesInShape {
				shapeNoUnities[k] = outShape[i]
				k--
			}
		}
	}

	out.SetEws(subArrLen)

	CalcOffsetsFromDims(heldShape, heldStride, subArrOffsets, OrderC)

	if !keepUnitiesInShape {
		ReshapeC(out, shapeNoUnities, subArrShapeInfo)
	} else {
		copy(subArrShapeInfo, out)
	}
}
