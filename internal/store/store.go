// Package store is the record store adapter: each entity lives in a named
// collection that is loaded and saved whole. How records are physically kept
// (Postgres row, in-process map) is an implementation detail; services only
// see Load/Save semantics.
package store

// Persisted collection names. Downstream reporting depends on these and on
// the record field names verbatim.
const (
	Products     = "products"
	StockLevels  = "stock_levels"
	StockEntries = "stock_entries"
	Sales        = "sales"
	Customers    = "customers"
	Users        = "users"
)

type Store interface {
	// Load decodes the named collection into out, which must be a pointer to
	// a slice. A collection that was never saved loads as an empty slice.
	Load(collection string, out any) error

	// Save replaces the named collection with records (a slice).
	Save(collection string, records any) error
}
