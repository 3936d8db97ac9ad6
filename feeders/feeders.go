// Package feeders loads a KernelConfig from YAML, TOML, or environment
// variables. Each feeder knows only how to populate a struct from one
// source; callers chain them (e.g. file first, then env to override)
// by calling Feed repeatedly against the same target.
package feeders

// Feeder loads configuration data into structure, a pointer to a
// struct tagged with the source-specific field tags (yaml/toml/env).
type Feeder interface {
	Feed(structure interface{}) error
}

// ComplexFeeder extends Feeder with the ability to extract a single
// named key rather than the whole document, for sources that hold more
// than one configuration section.
type ComplexFeeder interface {
	Feeder
	FeedKey(key string, target interface{}) error
}
