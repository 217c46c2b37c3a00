package core

import "strings"

// Filter binds a module path prefix to a threshold that replaces the
// default threshold for records originating under that prefix.
type Filter struct {
	module string
	level  Level
}

// NewFilter creates a Filter. The module must not be empty.
func NewFilter(module string, level Level) (Filter, error) {
	if module == "" {
		return Filter{}, ErrEmptyModule
	}
	return Filter{module: module, level: level}, nil
}

// Module returns the filter's module path
func (f Filter) Module() string {
	return f.module
}

// Level returns the filter's threshold
func (f Filter) Level() Level {
	return f.level
}

// Matches reports whether a record from origin falls under this filter.
// The origin must equal the module or continue it after a path separator,
// so "app.net" covers "app.net.http" and "app.net/http" but not "app.network".
func (f Filter) Matches(origin string) bool {
	if !strings.HasPrefix(origin, f.module) {
		return false
	}
	rest := origin[len(f.module):]
	if rest == "" {
		return true
	}
	if strings.HasSuffix(f.module, ".") || strings.HasSuffix(f.module, "/") || strings.HasSuffix(f.module, "::") {
		return true
	}
	return rest[0] == '.' || rest[0] == '/' || strings.HasPrefix(rest, "::")
}

// FilterSet resolves the threshold for an origin from a default level and
// an ordered list of filters. It is immutable after construction and safe
// for concurrent use.
type FilterSet struct {
	def     Level
	filters []Filter
	max     Level
}

// NewFilterSet builds a FilterSet. The filters slice is copied.
func NewFilterSet(def Level, filters []Filter) *FilterSet {
	fs := &FilterSet{
		def:     def,
		filters: append([]Filter(nil), filters...),
		max:     def,
	}
	for _, f := range fs.filters {
		if f.level > fs.max {
			fs.max = f.level
		}
	}
	return fs
}

// Default returns the default threshold
func (fs *FilterSet) Default() Level {
	return fs.def
}

// Filters returns a copy of the filters in insertion order
func (fs *FilterSet) Filters() []Filter {
	return append([]Filter(nil), fs.filters...)
}

// MaxLevel returns the most verbose threshold across the default and all
// filters. A facade gated at this level never hides a record some filter
// would admit.
func (fs *FilterSet) MaxLevel() Level {
	return fs.max
}

// Threshold returns the threshold applying to records from origin.
// The longest matching module wins; among equal lengths the filter added
// last wins. An empty origin always uses the default.
func (fs *FilterSet) Threshold(origin string) Level {
	if origin == "" {
		return fs.def
	}
	level := fs.def
	best := -1
	for _, f := range fs.filters {
		if len(f.module) >= best && f.Matches(origin) {
			best = len(f.module)
			level = f.level
		}
	}
	return level
}

// Enabled reports whether a record at level from origin passes.
func (fs *FilterSet) Enabled(origin string, level Level) bool {
	return fs.Threshold(origin).Enables(level)
}
