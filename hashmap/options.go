package hashmap

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger makes the map report rejected and overflowing inserts at debug
// level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
