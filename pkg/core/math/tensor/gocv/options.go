package gocv

// fromMatConfig controls how FromMat treats the source Mat's lifetime.
type fromMatConfig struct {
	closeSource bool
}

// Option customises tensor construction from an existing gocv.Mat.
type Option func(*fromMatConfig)

// WithAdoptedMat instructs FromMat to take ownership of the source Mat: once
// its pixel data has been copied into the returned tensor, the Mat is closed.
// Callers must not use or Close the Mat after passing it to FromMat with this
// option.
func WithAdoptedMat() Option {
	return func(cfg *fromMatConfig) {
		cfg.closeSource = true
	}
}
