package catalog

import "strings"

// Record is a single catalog entry (immutable value object).
type Record struct {
	code           string
	officialName   string
	elaboratedName string
	articleNumber  string
}

// NewRecord creates a Record. Absent fields are passed as empty strings;
// no validation happens here, malformed entries are still searchable.
func NewRecord(code, officialName, elaboratedName, articleNumber string) Record {
	return Record{
		code:           code,
		officialName:   officialName,
		elaboratedName: elaboratedName,
		articleNumber:  articleNumber,
	}
}

// Code returns the dot-separated hierarchical identifier, e.g. "1.2.5".
func (r Record) Code() string { return r.code }

// OfficialName returns the canonical designation.
func (r Record) OfficialName() string { return r.officialName }

// ElaboratedName returns the secondary description (may be empty).
func (r Record) ElaboratedName() string { return r.elaboratedName }

// ArticleNumber returns the shop article number (empty when not orderable).
func (r Record) ArticleNumber() string { return r.articleNumber }

// Orderable reports whether the record can be ordered by article number.
func (r Record) Orderable() bool {
	return strings.TrimSpace(r.articleNumber) != ""
}

// SearchText is the text matched by keyword search: official and elaborated
// names joined by a space, lower-cased.
func (r Record) SearchText() string {
	return strings.ToLower(r.officialName + " " + r.elaboratedName)
}
