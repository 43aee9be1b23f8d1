package parser

// Option configures a Parser at construction time (the functional-options
// pattern).
type Option func(*config)

type config struct {
	maxDepth        int
	recordComments  bool
	trailingSemicolon bool
}

func defaultConfig() config {
	return config{
		maxDepth: 512,
	}
}

// WithMaxDepth overrides the default recursion-depth limit (512) applied
// to nested expressions and subqueries, guarding against stack
// exhaustion on pathologically deep input.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

// WithRecordComments makes ParseWithMarginComments split a leading and
// trailing comment block off of the input before tokenizing, returning
// them separately instead of discarding them as trivia. Plain Parse
// ignores the split result but still benefits: sql is parsed the same
// either way.
func WithRecordComments(record bool) Option {
	return func(c *config) { c.recordComments = record }
}

// WithTrailingSemicolon makes the unparser emit a trailing ';' after the
// final statement (it always separates statements with one); off by
// default since most callers treat the semicolon as a separator, not a
// terminator.
func WithTrailingSemicolon(trailing bool) Option {
	return func(c *config) { c.trailingSemicolon = trailing }
}

// Config is the resolved, read-only view of a set of Options, for
// callers (like sqlast.FormatAll) that need to react to a parser option
// outside the parser package itself.
type Config struct {
	cfg config
}

// ResolveConfig applies opts to the default configuration and returns
// the result.
func ResolveConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return Config{cfg: cfg}
}

// MaxDepth returns the configured recursion-depth limit.
func (c Config) MaxDepth() int { return c.cfg.maxDepth }

// RecordComments reports whether WithRecordComments(true) was applied.
func (c Config) RecordComments() bool { return c.cfg.recordComments }

// TrailingSemicolon reports whether WithTrailingSemicolon(true) was applied.
func (c Config) TrailingSemicolon() bool { return c.cfg.trailingSemicolon }
