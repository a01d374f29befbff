package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"pdfshare/internal/config"
	"pdfshare/internal/logging"
)

const defaultShareLinkTTL = time.Hour

type options struct {
	log            zerolog.Logger
	metrics        *Metrics
	sharedLinkMode string
	shareLinkTTL   time.Duration
	now            func() time.Time
}

// Option configures a service.
type Option func(*options)

// WithLogger sets the logger used for operational events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics sets the Prometheus counters.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithSharedLinkMode selects how /pdf/shared is authorized. Unknown modes are treated as authenticated.
func WithSharedLinkMode(mode string) Option {
	return func(o *options) { o.sharedLinkMode = mode }
}

// WithShareLinkTTL sets the lifetime of presigned download URLs.
func WithShareLinkTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shareLinkTTL = d
		}
	}
}

func (o options) logger(ctx context.Context) zerolog.Logger {
	return logging.Ctx(ctx, o.log)
}

func newOptions(opts []Option) options {
	o := options{
		log:            zerolog.Nop(),
		sharedLinkMode: config.SharedLinkAuthenticated,
		shareLinkTTL:   defaultShareLinkTTL,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
