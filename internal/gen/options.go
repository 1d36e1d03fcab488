package gen

type options struct {
	logger      *Logger
	runtimePath string
	tags        []string
	dir         string
}

// Option configures loading and generation.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithRuntimePath overrides the import path of the runtime package, for
// forks and vendored copies.
func WithRuntimePath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.runtimePath = path
		}
	}
}

// WithBuildTags sets the build tags used when loading packages.
func WithBuildTags(tags ...string) Option {
	return func(o *options) {
		o.tags = tags
	}
}

// WithDir sets the directory package patterns are resolved in.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger:      NoopLogger(),
		runtimePath: RuntimePath,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
