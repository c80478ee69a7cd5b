package edgedist

import "runtime"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultReturnDist controls whether the distance column is emitted.
	DefaultReturnDist = false

	// DefaultFillNA reinstates unmatched (group, id) combinations as rows
	// with a null partner.
	DefaultFillNA = true

	// DefaultSpatialIndex selects the dense distance-matrix engine.
	DefaultSpatialIndex = false

	// DefaultParallelism processes groups sequentially.
	DefaultParallelism = 1

	// DefaultStrictCoordinates keeps the silent exclusion of pairs with a
	// null or non-finite coordinate.
	DefaultStrictCoordinates = false
)

// Option configures a single EdgeDist call. Options only record what the
// caller asked for; all checking happens in the validator, so a bad option
// surfaces as an error from EdgeDist rather than a panic.
type Option func(*config)

type config struct {
	threshold    float64
	hasThreshold bool

	id        string
	coords    []string
	timegroup string // "" with hasTimegroup=true means ungrouped
	splitBy   []string

	hasTimegroup bool

	returnDist   bool
	fillNA       bool
	spatialIndex bool
	parallelism  int
	strictCoords bool

	logger *Logger
}

// WithThreshold sets the strict upper bound on distance for an edge, in
// coordinate units. Required.
func WithThreshold(threshold float64) Option {
	return func(c *config) {
		c.threshold = threshold
		c.hasThreshold = true
	}
}

// WithID names the entity identifier column. Required.
func WithID(column string) Option {
	return func(c *config) { c.id = column }
}

// WithCoords names the x and y coordinate columns. Exactly two are required.
func WithCoords(columns ...string) Option {
	return func(c *config) { c.coords = append([]string(nil), columns...) }
}

// WithTimegroup names the precomputed time-group column. Either WithTimegroup
// or WithoutTimegroup is required; an empty name is the same as WithoutTimegroup.
func WithTimegroup(column string) Option {
	return func(c *config) {
		c.timegroup = column
		c.hasTimegroup = true
	}
}

// WithoutTimegroup states that no temporal grouping is wanted: rows are
// grouped by the splitBy columns only, or form a single implicit group.
func WithoutTimegroup() Option {
	return WithTimegroup("")
}

// WithSplitBy adds extra grouping columns combined with the timegroup.
func WithSplitBy(columns ...string) Option {
	return func(c *config) { c.splitBy = append([]string(nil), columns...) }
}

// WithReturnDist toggles the distance column in the output.
func WithReturnDist(on bool) Option {
	return func(c *config) { c.returnDist = on }
}

// WithFillNA toggles reinstating unmatched entities with a null partner.
func WithFillNA(on bool) Option {
	return func(c *config) { c.fillNA = on }
}

// WithSpatialIndex replaces the dense per-group distance matrix with a
// uniform grid index. The selected pairs, distances and order are identical.
func WithSpatialIndex(on bool) Option {
	return func(c *config) { c.spatialIndex = on }
}

// WithParallelism bounds the number of groups processed concurrently.
// n <= 0 uses GOMAXPROCS. Output does not depend on n.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.parallelism = n
	}
}

// WithStrictCoordinates makes a null or non-finite coordinate a
// TypeMismatchError instead of silently excluding the affected pairs.
func WithStrictCoordinates(on bool) Option {
	return func(c *config) { c.strictCoords = on }
}

// WithLogger routes diagnostics to l. A nil logger discards them.
func WithLogger(l *Logger) Option {
	return func(c *config) { c.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) config {
	c := config{
		returnDist:   DefaultReturnDist,
		fillNA:       DefaultFillNA,
		spatialIndex: DefaultSpatialIndex,
		parallelism:  DefaultParallelism,
		strictCoords: DefaultStrictCoordinates,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = NoopLogger()
	}

	return c
}
