// SPDX-License-Identifier: MIT

package stokes

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/polconv/matrix"
)

// Option configures a Converter at build time.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	matrixOpts []matrix.Option
}

// WithLogger attaches a logger for build/release events. The apply path never logs.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMatrixOptions forwards numeric policy to the pseudo-inverse solve.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
