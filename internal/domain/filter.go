package domain

const (
	// DefaultPageLimit is applied when a page filter carries no limit.
	DefaultPageLimit = 20
	// MaxPageLimit caps a single page.
	MaxPageLimit = 200
)

// PageFilter is offset pagination for list queries. Page is 1-based.
type PageFilter struct {
	Page  int
	Limit int
}

// Normalize clamps the filter into valid bounds.
func (p PageFilter) Normalize() PageFilter {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset returns the row offset for the normalized filter.
func (p PageFilter) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}
