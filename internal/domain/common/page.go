// Package common holds types shared by the domain aggregates.
package common

// Pagination defaults
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page carries limit/offset pagination for list queries
type Page struct {
	Limit  int `json:"limit" form:"limit" validate:"gte=0,lte=100"`
	Offset int `json:"offset" form:"offset" validate:"gte=0"`
}

// Normalize applies the default limit when none is set
func (p *Page) Normalize() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}
