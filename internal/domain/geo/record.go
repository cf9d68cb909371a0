// Package geo defines the location record attached to login provenance.
// A Record is always fully populated: lookup failures degrade to Unknown
// values instead of errors or empty fields.
package geo

import "context"

// Unknown is the placeholder for any field a lookup could not resolve.
const Unknown = "Unknown"

// Record describes the best-effort location and ISP of a network address.
type Record struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
	ISP     string `json:"isp"`
}

// DefaultRecord returns the all-Unknown record used when a lookup fails.
func DefaultRecord() Record {
	return Record{
		Country: Unknown,
		Region:  Unknown,
		City:    Unknown,
		ISP:     Unknown,
	}
}

// Normalized returns a copy with every empty field replaced by Unknown,
// preserving the invariant that no field is ever blank.
func (r Record) Normalized() Record {
	if r.Country == "" {
		r.Country = Unknown
	}
	if r.Region == "" {
		r.Region = Unknown
	}
	if r.City == "" {
		r.City = Unknown
	}
	if r.ISP == "" {
		r.ISP = Unknown
	}
	return r
}

// IsDefault reports whether the record carries no resolved information.
func (r Record) IsDefault() bool {
	return r == DefaultRecord()
}

// Resolver maps a client address to a Record. Implementations must be total:
// any failure returns DefaultRecord, never an error.
type Resolver interface {
	Resolve(ctx context.Context, ip string) Record
}
