// Package catalog holds the immutable product catalog loaded once at startup.
package catalog

// Catalog is an ordered, read-only sequence of records.
// Insertion order is preserved: it decides which records survive truncation.
type Catalog struct {
	records []Record
}

// New creates a Catalog from records. The slice is copied, later changes to
// the argument are not visible through the Catalog.
func New(records []Record) Catalog {
	if len(records) == 0 {
		return Catalog{}
	}
	cp := make([]Record, len(records))
	copy(cp, records)
	return Catalog{records: cp}
}

// Empty returns the catalog used when loading failed.
func Empty() Catalog { return Catalog{} }

// Len returns the number of records.
func (c Catalog) Len() int { return len(c.records) }

// IsEmpty reports whether the catalog has no records.
func (c Catalog) IsEmpty() bool { return len(c.records) == 0 }

// Filter returns the records accepted by keep, in catalog order.
func (c Catalog) Filter(keep func(Record) bool) []Record {
	var out []Record
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the first record accepted by match.
func (c Catalog) Find(match func(Record) bool) (Record, bool) {
	for _, r := range c.records {
		if match(r) {
			return r, true
		}
	}
	return Record{}, false
}
