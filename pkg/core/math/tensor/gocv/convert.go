package gocv

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/itohio/shapeinfo/pkg/core/math/tensor/eager_tensor"
	"github.com/itohio/shapeinfo/pkg/core/math/tensor/shapeinfo"
	"github.com/itohio/shapeinfo/pkg/core/math/tensor/types"
	cv "gocv.io/x/gocv"
)

// pixelStrides returns the element strides for a row-major (rows, cols,
// channels) layout, derived the same way any other packed tensor in this
// module derives its strides rather than a hand-rolled cols*channels
// multiplication.
func pixelStrides(rows, cols, channels int) (row, col, ch int) {
	info := shapeinfo.ShapeBuffer([]int64{int64(rows), int64(cols), int64(channels)})
	strides := info.Stride()
	return int(strides[0]), int(strides[1]), int(strides[2])
}

func matTypeForChannels(channels int) (cv.MatType, error) {
	switch channels {
	case 1:
		return cv.MatTypeCV8UC1, nil
	case 2:
		return cv.MatTypeCV8UC2, nil
	case 3:
		return cv.MatTypeCV8UC3, nil
	case 4:
		return cv.MatTypeCV8UC4, nil
	default:
		return 0, fmt.Errorf("%w: channels=%d", ErrUnsupported, channels)
	}
}

// FromMat constructs a tensor from an existing Mat, copying pixel data into a
// row-major FP32 buffer. By default the source Mat is left untouched; pass
// WithAdoptedMat to have FromMat close it once the copy is done.
func FromMat(mat cv.Mat, opts ...Option) (types.Tensor, error) {
	cfg := fromMatConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.closeSource {
		defer mat.Close()
	}

	if mat.Empty() {
		return nil, ErrNilMat
	}

	rows, cols, channels := mat.Rows(), mat.Cols(), mat.Channels()
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, fmt.Errorf("gocv tensor: invalid mat dimensions: rows=%d cols=%d channels=%d", rows, cols, channels)
	}

	raw, err := mat.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("gocv tensor: read mat data: %w", err)
	}

	rowStride, colStride, chStride := pixelStrides(rows, cols, channels)
	shape := types.Shape{rows, cols, channels}
	data := make([]float32, shape.Size())
	for r := 0; r < rows; r++ {
		base := r * rowStride
		for c := 0; c < cols; c++ {
			off := base + c*colStride
			for ch := 0; ch < channels; ch++ {
				data[off+ch*chStride] = float32(raw[off+ch*chStride])
			}
		}
	}

	return eager_tensor.FromFloat32(shape, data), nil
}

// ToMat returns a new Mat populated from the provided tensor, which must have
// rank 2 (grayscale) or rank 3 (rows, cols, channels).
func ToMat(t types.Tensor) (cv.Mat, error) {
	if t == nil || t.Empty() {
		return cv.NewMat(), ErrNilMat
	}

	shape := t.Shape()
	channels := 1
	switch len(shape) {
	case 2:
	case 3:
		channels = shape[2]
	default:
		return cv.NewMat(), fmt.Errorf("%w: ToMat expects rank 2 or 3 tensor, got rank %d", ErrUnsupported, len(shape))
	}
	rows, cols := shape[0], shape[1]

	matType, err := matTypeForChannels(channels)
	if err != nil {
		return cv.NewMat(), err
	}

	mat := cv.NewMatWithSize(rows, cols, matType)
	raw, err := mat.DataPtrUint8()
	if err != nil {
		mat.Close()
		return cv.NewMat(), err
	}

	data, err := asFloat32(t)
	if err != nil {
		mat.Close()
		return cv.NewMat(), err
	}

	rowStride, colStride, chStride := pixelStrides(rows, cols, channels)
	for r := 0; r < rows; r++ {
		base := r * rowStride
		for c := 0; c < cols; c++ {
			off := base + c*colStride
			for ch := 0; ch < channels; ch++ {
				raw[off+ch*chStride] = clampUint8(data[off+ch*chStride])
			}
		}
	}
	return mat, nil
}

func asFloat32(t types.Tensor) ([]float32, error) {
	if t.DataType() == types.DTFP32 {
		if data, ok := t.Data().([]float32); ok {
			return data, nil
		}
	}
	converted := types.CloneTensorDataTo(types.DTFP32, t.Data())
	data, ok := converted.([]float32)
	if !ok {
		return nil, fmt.Errorf("%w: tensor data type %v", ErrUnsupportedDepth, t.DataType())
	}
	return data, nil
}

func clampUint8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

// FromImage converts an image into a GoCV-backed tensor.
func FromImage(img image.Image, opts ...Option) (types.Tensor, error) {
	if img == nil {
		return nil, fmt.Errorf("gocv tensor: nil image")
	}

	rgba := ensureRGBA(img)
	mat, err := cv.ImageToMatRGBA(rgba)
	if err != nil {
		return nil, fmt.Errorf("gocv tensor: convert image -> mat: %w", err)
	}

	tensor, err := FromMat(mat, append(opts, WithAdoptedMat())...)
	if err != nil {
		return nil, err
	}
	return tensor, nil
}

// ToImage converts a tensor into an image.Image via a temporary Mat.
func ToImage(t types.Tensor) (image.Image, error) {
	mat, err := ToMat(t)
	if err != nil {
		return nil, err
	}
	defer mat.Close()
	return mat.ToImage()
}

func ensureRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		rgba := image.NewRGBA(nrgba.Rect)
		draw.Draw(rgba, rgba.Bounds(), nrgba, nrgba.Rect.Min, draw.Src)
		return rgba
	}

	rect := img.Bounds()
	rgba := image.NewRGBA(rect)
	draw.Draw(rgba, rect, img, rect.Min, draw.Src)
	return rgba
}
