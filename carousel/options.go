package carousel

import (
	"github.com/davidvella/orbit/internal/logging"
	"github.com/sirupsen/logrus"
)

// options defines the configuration of a Carousel.
type options struct {
	logger   logrus.FieldLogger // Receives debug entries for mutations
	capacity int                // Number of keys to preallocate
}

// Option is a function that configures a Carousel.
type Option func(*options)

// WithLogger sets the logger that receives debug entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCapacity preallocates room for n keys.
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
