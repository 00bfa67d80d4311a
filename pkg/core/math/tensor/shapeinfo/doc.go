// Package shapeinfo implements the packed shape/stride descriptor that the
// rest of the tensor stack (eager_tensor, the gorgonia and gocv adapters)
// builds on. A descriptor carries rank, shape, stride, an opaque "extra"
// flags/dtype word, the element-wise-stride (ews) and the storage order in
// one flat []int64, mirroring the layout the original nd4j shape engine
// used for cache locality and trivial copy.
//
// Descriptors are immutable once published. The only way to change one is
// through the explicit mutators in this package (UpdateStrides, Permute,
// TransposeInplace, SetOrderAndEws, SetEws, and the raw setters SetExtra,
// SetEwsRaw, SetOrderRaw, SetDataType, SetEmptyFlag) or by passing it as
// the output argument of ReshapeC, CalcSubArrShapeAndOffsets or
// UnmarshalBinary; every other function only reads. Callers needing a
// writable copy should DetachShape first.
package shapeinfo

// MAX_RANK bounds the number of dimensions a descriptor may carry. It sizes
// every stack-allocated scratch array in this package and bounds recursion
// and loop depth, so it is an engine-wide invariant rather than a tunable.
const MAX_RANK = 32

// Order byte values, matching the C convention the original engine used so
// descriptors exchanged with the numpy/protobuf boundary need no translation.
const (
	OrderC    byte = 99  // 'c', row-major: last dimension varies fastest.
	OrderF    byte = 102 // 'f', column-major: first dimension varies fastest.
	orderBoth byte = 97  // 'a', transient marker meaning "both c- and f-contiguous"; never persisted.
)

// Bits within the "extra" word (index 2*rank+1). The low byte carries the
// element data type (an opaque value as far as this package is concerned);
// bit 8 carries the empty flag.
const (
	extraDataTypeMask = 0xFF
	extraEmptyFlag    = int64(1) << 8
)
