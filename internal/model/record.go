package model

// Record is a flat record with a single text field.
// The name is fixed at construction; Record has no setters.
type Record struct {
	name string
}

// NewRecord returns a Record holding name.
func NewRecord(name string) Record {
	return Record{name: name}
}

// Name returns the record's name field.
func (r Record) Name() string {
	return r.name
}
