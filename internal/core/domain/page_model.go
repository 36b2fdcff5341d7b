package domain

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// Page selects a slice of the distribution log.
type Page struct {
	Number int
	Size   int
}

// NewPage returns a page with defaults applied to out of range values.
func NewPage(pageNumber, pageSize int) Page {
	page := Page{defaultPageNumber, defaultPageSize}
	if pageNumber > 0 {
		page.Number = pageNumber
	}
	if pageSize > 0 {
		page.Size = pageSize
	}
	return page
}

// Offset returns the number of records preceding the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
