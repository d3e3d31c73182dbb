package record

import "iter"

// Accessor is the keyed access protocol a Record offers.
// Code that only needs to read and write fields should depend on it rather than on *Record.
type Accessor interface {
	Has(name string) bool
	Get(name string) (any, error)
	Set(name string, value any) error
	Len() int
	Keys() iter.Seq[string]
}

var _ Accessor = (*Record)(nil)
