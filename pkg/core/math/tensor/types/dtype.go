package types

// DataType represents the underlying element type stored by a tensor.
type DataType uint8

const (
	DT_UNKNOWN DataType = iota
	DTFP32              // DTFP32 represents 32-bit floating point tensors (default).
	DTFP64              // 64-bit floating point tensors
	DTFP16              // 16-bit floating point tensors
	DTINT48             // 4-bit integer tensors unpacked into 8bit
	DTINT8              // 8-bit integer tensors
	DTINT16             // 16-bit integer tensors
	DTINT32             // 32-bit integer tensors
	DTINT64             // 64-bit integer tensors
	DTINT               // platform native int tensors, used by gorgonia.org/tensor's Int dtype
)

// FP32, FP64, INT8, INT16, INT32, INT64 and INT are the names the
// gorgonia.org/tensor adapter uses for these same data types.
const (
	FP32  = DTFP32
	FP64  = DTFP64
	INT8  = DTINT8
	INT16 = DTINT16
	INT32 = DTINT32
	INT64 = DTINT64
	INT   = DTINT
)

// RNG is the random source required by dropout-mask generation. *rand.Rand
// satisfies it.
type RNG interface {
	Float64() float64
}

// DataElementType is the type constraint for the data elements in the tensor.
type DataElementType interface {
	~float64 | ~float32 | ~int16 | ~int8 | ~int32 | ~int64 | ~int
}

func TypeFromData(v any) DataType {
	switch any(v).(type) {
	case float64:
		return DTFP64
	case float32:
		return DTFP32
	case int16:
		return DTINT16
	case int8:
		return DTINT8
	case int32:
		return DTINT32
	case int64:
		return DTINT64
	case []float64:
		return DTFP64
	case []float32:
		return DTFP32
	case []int16:
		return DTINT16
	case []int8:
		return DTINT8
	case []int32:
		return DTINT32
	case []int64:
		return DTINT64
	case []int:
		return DTINT
	default:
		return DT_UNKNOWN
	}
}

func MakeTensorData(dt DataType, size int) any {
	switch dt {
	case DTFP32:
		return make([]float32, size)
	case DTFP64:
		return make([]float64, size)
	case DTINT16:
		return make([]int16, size)
	case DTINT8:
		return make([]int8, size)
	case DTINT48:
		return make([]int8, size)
	case DTINT32:
		return make([]int32, size)
	case DTINT64:
		return make([]int64, size)
	case DTINT:
		return make([]int, size)
	default:
		return nil
	}
}

func CloneTensorDataTo(dst DataType, data any) any {
	if data == nil {
		return nil
	}
	size := 0
	switch d := data.(type) {
	case []float32:
		size = len(d)
	case []float64:
		size = len(d)
	case []int16:
		size = len(d)
	case []int8:
		size = len(d)
	case []int32:
		size = len(d)
	case []int64:
		size = len(d)
	case []int:
		size = len(d)
	default:
		return nil
	}

	newData := MakeTensorData(dst, size)
	if newData == nil {
		return nil
	}
	return CopyTensorData(dst, newData, data)
}

func CloneTensorData(data any) any {
	if data == nil {
		return nil
	}
	return CloneTensorDataTo(TypeFromData(data), data)
}

// numericAt returns the value at index i of any supported tensor data slice,
// widened to float64 for conversion into the destination dtype.
func numericAt(src any, i int) (float64, bool) {
	switch s := src.(type) {
	case []float32:
		return float64(s[i]), true
	case []float64:
		return s[i], true
	case []int16:
		return float64(s[i]), true
	case []int8:
		return float64(s[i]), true
	case []int32:
		return float64(s[i]), true
	case []int64:
		return float64(s[i]), true
	case []int:
		return float64(s[i]), true
	default:
		return 0, false
	}
}

func CopyTensorData(dst DataType, dstData, srcData any) any {
	if srcData == nil || dstData == nil {
		return nil
	}

	switch dst {
	case DTFP32:
		dstSlice, ok := dstData.([]float32)
		if !ok {
			return nil
		}
		if same, ok := srcData.([]float32); ok {
			copy(dstSlice, same)
			return dstSlice
		}
		for i := range dstSlice {
			v, ok := numericAt(srcData, i)
			if !ok {
				return nil
			}
			dstSlice[i] = float32(v)
		}
		return dstSlice
	case DTFP64:
		dstSlice, ok := dstData.([]float64)
		if !ok {
			return nil
		}
		if same, ok := srcData.([]float64); ok {
			copy(dstSlice, same)
			return dstSlice
		}
		for i := range dstSlice {
			v, ok := numericAt(srcData, i)
			if !ok {
				return nil
			}
			dstSlice[i] = v
		}
		return dstSlice
	case DTINT16:
		dstSlice, ok := dstData.([]int16)
		if !ok {
			return nil
		}
		if same, ok := srcData.([]int16); ok {
			copy(dstSlice, same)
			return dstSlice
		}
		for i := range dstSlice {
			v, ok := numericAt(srcData, i)
			if !ok {
				return nil
			}
			dstSlice[i] = int16(v)
		}
		return dstSlice
	case DTINT8, DTINT48:
		dstSlice, ok := dstData.([]int8)
		if !ok {
			return nil
		}
		if same, ok := srcData.([]int8); ok {
			copy(dstSlice, same)
			return dstSlice
		}
		for i := range dstSlice {
			v, ok := numericAt(srcData, i)
			if !ok {
				return nil
			}
			if v > 127 {
				v = 127
			} else if v < -128 {
				v = -128
			}
			dstSlice[i] = int8(v)
		}
		return dstSlice
	case DTINT32:
		dstSlice, ok := dstData.([]int32)
		if !ok {
			return nil
		}
		if same, ok := srcData.([]int32); ok {
			copy(dstSlice, same)
			return dstSlice
		}
		for i := range dstSlice {
			v, ok := numericAt(srcData, i)
			if !ok {
				return nil
			}
			dstSlice[i] = int32(v)
		}
		return dstSlice
	case DTINT64:
		dstSlice, ok := dstData.([]int64)
		if !ok {
			return nil
		}
		if same, ok := srcData.([]int64); ok {
			copy(dstSlice, same)
			return dstSlice
		}
		for i := range dstSlice {
			v, ok := numericAt(srcData, i)
			if !ok {
				return nil
			}
			dstSlice[i] = int64(v)
		}
		return dstSlice
	case DTINT:
		dstSlice, ok := dstData.([]int)
		if !ok {
			return nil
		}
		if same, ok := srcData.([]int); ok {
			copy(dstSlice, same)
			return dstSlice
		}
		for i := range dstSlice {
			v, ok := numericAt(srcData, i)
			if !ok {
				return nil
			}
			dstSlice[i] = int(v)
		}
		return dstSlice
	default:
		return nil
	}
}

// Helper functions to work with interface tensors
func GetTensorData[T any](t Tensor) T {
	if t == nil {
		var zero T
		return zero
	}
	data := t.Data()
	if data == nil {
		var zero T
		return zero
	}
	return data.(T)
}
