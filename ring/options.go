// File: ring/options.go
// Package ring defines functional options for Checked.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

const defaultName = "ring"

type options struct {
	name    string
	logger  *zap.Logger
	metrics api.Metrics
}

// Option customizes a Checked ring.
type Option func(*options)

// WithName sets the name used in log fields and metric keys.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger routes violation reports to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics counts violations in m under ring.<name>.<kind>.
func WithMetrics(m api.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) options {
	o := options{name: defaultName}
	for _, fn := range opts {
		fn(&o)
	}
	if o.name == "" {
		o.name = defaultName
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
