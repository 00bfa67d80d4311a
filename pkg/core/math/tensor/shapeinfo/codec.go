package shapeinfo

// ShapeInfo is the packed descriptor described in the package doc: a flat
// sequence of length 2*Rank()+4 laid out as
// [rank, shape..., stride..., extra, ews, order].
type ShapeInfo []int64

// ShapeInfoLength returns the number of int64 words a rank-R descriptor
// occupies: 2*R+4.
func ShapeInfoLength(rank int) int {
	return 2*rank + 4
}

// ShapeInfoByteLength returns the byte length of a rank-R descriptor,
// assuming 8-byte native-endian words.
func ShapeInfoByteLength(rank int) int64 {
	return int64(ShapeInfoLength(rank)) * 8
}

func assertRank(rank int) {
	if rank < 0 || rank > MAX_RANK {
		panic("shapeinfo: rank out of range")
	}
}

// Rank returns the descriptor's rank. Panics if info is malformed.
func (s ShapeInfo) Rank() int {
	if len(s) < 4 {
		panic("shapeinfo: descriptor too short")
	}
	rank := int(s[0])
	assertRank(rank)
	return rank
}

// Shape returns the descriptor's shape as a view into the underlying
// buffer; mutating it mutates the descriptor.
func (s ShapeInfo) Shape() []int64 {
	rank := s.Rank()
	return s[1 : 1+rank]
}

// Stride returns the descriptor's stride as a view into the underlying
// buffer; mutating it mutates the descriptor.
func (s ShapeInfo) Stride() []int64 {
	rank := s.Rank()
	return s[1+rank : 1+2*rank]
}

// Extra returns the opaque extra/flags word.
func (s ShapeInfo) Extra() int64 {
	rank := s.Rank()
	return s[2*rank+1]
}

// SetExtra overwrites the extra/flags word.
func (s ShapeInfo) SetExtra(v int64) {
	rank := s.Rank()
	s[2*rank+1] = v
}

// Ews returns the element-wise-stride word; 0 means no uniform stride.
func (s ShapeInfo) Ews() int64 {
	rank := s.Rank()
	return s[2*rank+2]
}

// SetEwsRaw overwrites the ews word directly, bypassing canonicalization.
// Most callers want SetEws or SetOrderAndEws (classify.go); the latter
// re-derives order too.
func (s ShapeInfo) SetEwsRaw(v int64) {
	rank := s.Rank()
	s[2*rank+2] = v
}

// Order returns the storage order byte (OrderC or OrderF).
func (s ShapeInfo) Order() byte {
	rank := s.Rank()
	return byte(s[2*rank+3])
}

// SetOrderRaw overwrites the order byte directly.
func (s ShapeInfo) SetOrderRaw(v byte) {
	rank := s.Rank()
	s[2*rank+3] = int64(v)
}

// DataType returns the dtype bits packed into the extra word's low byte.
func (s ShapeInfo) DataType() uint8 {
	return uint8(s.Extra() & extraDataTypeMask)
}

// SetDataType rewrites the dtype bits of the extra word, leaving flag bits
// untouched.
func (s ShapeInfo) SetDataType(t uint8) {
	s.SetExtra((s.Extra() &^ extraDataTypeMask) | int64(t))
}

// IsEmpty reports whether the descriptor's empty flag is set.
func (s ShapeInfo) IsEmpty() bool {
	return s.Extra()&extraEmptyFlag != 0
}

// SetEmptyFlag sets or clears the empty flag in the extra word.
func (s ShapeInfo) SetEmptyFlag(v bool) {
	extra := s.Extra()
	if v {
		extra |= extraEmptyFlag
	} else {
		extra &^= extraEmptyFlag
	}
	s.SetExtra(extra)
}

// Length returns the number of logical elements the descriptor describes:
// the product of its shape, 0 if any dimension is 0, and for the rank-0
// form 0 when the empty flag is set, else 1.
func (s ShapeInfo) Length() int64 {
	rank := s.Rank()
	if rank == 0 {
		if s.IsEmpty() {
			return 0
		}
		return 1
	}
	shape := s.Shape()
	length := int64(1)
	for _, d := range shape {
		if d == 0 {
			return 0
		}
		length *= d
	}
	return length
}

// DetachShape returns an independent copy of the descriptor's full payload.
func DetachShape(info ShapeInfo) ShapeInfo {
	out := make(ShapeInfo, len(info))
	copy(out, info)
	return out
}

// CopyShape copies src's full payload into dst, which must be at least as
// long as src.
func CopyShape(dst, src ShapeInfo) {
	copy(dst, src)
}

// EqualsSoft reports whether a and b have identical rank and shape.
func EqualsSoft(a, b ShapeInfo) bool {
	ra, rb := a.Rank(), b.Rank()
	if ra != rb {
		return false
	}
	as, bs := a.Shape(), b.Shape()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// EqualsStrict reports whether a and b carry byte-for-byte identical
// payloads: same rank, shape, stride, extra, ews and order.
func EqualsStrict(a, b ShapeInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualsTypesAndShapesSoft reports soft equality (rank+shape) plus equality
// of the extra word (which carries the data type).
func EqualsTypesAndShapesSoft(a, b ShapeInfo) bool {
	return EqualsSoft(a, b) && a.Extra() == b.Extra()
}
