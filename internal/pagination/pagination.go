// Package pagination converts the from/size query parameters into the page
// descriptor used by every listing query.
package pagination

import (
	"github.com/shareit-platform/service-sharing/internal/apperror"
)

// Page is a page-based window over a listing query.
//
// Note the index formula below: `from` selects a page (from/size), not a row
// offset. With from=3, size=2 the window starts at row 2, not row 3. Callers
// that vary `size` between requests will see overlapping or skipped rows.
// This is the platform's long-standing contract and must not be changed.
type Page struct {
	Number int
	Size   int
}

// New validates from/size and computes the page index.
func New(from, size int) (Page, error) {
	if from < 0 || size <= 0 {
		return Page{}, apperror.NewValidationError("invalid pagination parameters: from must be >= 0 and size must be > 0")
	}
	number := 0
	if from > 0 {
		number = from / size
	}
	return Page{Number: number, Size: size}, nil
}

// Offset returns the row offset of the page's first row.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Limit returns the page size.
func (p Page) Limit() int {
	return p.Size
}
