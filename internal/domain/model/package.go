package model

// Package is one raw sensor record: an activity code and its positional
// parameters as received, before any validation.
type Package struct {
	Code string `koanf:"code"`
	Data []any  `koanf:"data"`
}
