package query

const (
	DefaultPageParamKey  = "_page"
	DefaultLimitParamKey = "_limit"
	DefaultSortParamKey  = "_sort"
)

// Options names the reserved parameters. Empty fields fall back to the
// defaults.
type Options struct {
	PageParamKey  string
	LimitParamKey string
	SortParamKey  string
}

// DecodeOptions tune a single HTTPQueryParamsToQuery call.
type DecodeOptions struct {
	DefaultPage  int
	DefaultLimit int
	// AllowComaSeparatedArrays splits a scalar filter value on commas when it
	// contains a comma, so "a,!=b" yields two clauses on the same key.
	AllowComaSeparatedArrays bool
}

// Builder converts between Query and ParamMap. Its options are fixed at
// construction, so a Builder may be shared between goroutines.
type Builder struct {
	opts Options
}

func NewBuilder(opts *Options) *Builder {
	merged := Options{
		PageParamKey:  DefaultPageParamKey,
		LimitParamKey: DefaultLimitParamKey,
		SortParamKey:  DefaultSortParamKey,
	}
	if opts != nil {
		if opts.PageParamKey != "" {
			merged.PageParamKey = opts.PageParamKey
		}
		if opts.LimitParamKey != "" {
			merged.LimitParamKey = opts.LimitParamKey
		}
		if opts.SortParamKey != "" {
			merged.SortParamKey = opts.SortParamKey
		}
	}
	return &Builder{opts: merged}
}

func (b *Builder) Options() Options { return b.opts }

func (b *Builder) reserved(key string) bool {
	return key == b.opts.PageParamKey || key == b.opts.LimitParamKey || key == b.opts.SortParamKey
}
