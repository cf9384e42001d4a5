package priority

import (
	"github.com/davidvella/orbit/internal/logging"
	"github.com/sirupsen/logrus"
)

// options defines the configuration of a Queue.
type options struct {
	logger   logrus.FieldLogger // Receives debug entries for sift operations
	capacity int                // Number of elements to preallocate
}

// Option is a function that configures a Queue.
type Option func(*options)

// WithLogger sets the logger that receives debug entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger:   logging.Discard(),
		capacity: 0,
	}
}
