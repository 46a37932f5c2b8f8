package internal

import "go.uber.org/zap"

// Tracer receives a narrative of what the triangulator is doing: points located,
// triangles split, edges flipped. It never influences the result.
type Tracer interface {
	Tracef(format string, args ...interface{})
}

type NopTracer struct{}

func (NopTracer) Tracef(string, ...interface{}) {}

// Adapts a plain function to the Tracer interface.
type TracerFunc func(format string, args ...interface{})

func (f TracerFunc) Tracef(format string, args ...interface{}) {
	f(format, args...)
}

type zapTracer struct {
	logger *zap.SugaredLogger
}

// Trace lines are logged at debug level.
func NewZapTracer(logger *zap.Logger) Tracer {
	if logger == nil {
		return NopTracer{}
	}
	return zapTracer{logger: logger.Sugar()}
}

func (z zapTracer) Tracef(format string, args ...interface{}) {
	z.logger.Debugf(format, args...)
}

type config struct {
	tracer Tracer
}

type Option func(*config)

func WithTracer(tracer Tracer) Option {
	return func(c *config) {
		if tracer == nil {
			tracer = NopTracer{}
		}
		c.tracer = tracer
	}
}

func newConfig(opts []Option) config {
	c := config{tracer: NopTracer{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
