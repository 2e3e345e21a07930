// Package queries contains read operations of the ordering service. Handlers read
// straight from the relational store through GORM and return flat views; they never
// load aggregates except where the authorization policy needs one.
package queries

import (
	"math"

	"littlelemon/internal/pkg/errs"
)

const DefaultPageSize = 20

// Page selects one page of a listing. Number starts at 1.
type Page struct {
	Number int
	Size   int
}

// NewPage defaults a zero number to the first page and a zero size to DefaultPageSize.
func NewPage(number, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 1 {
		return Page{}, errs.NewObjectNotFoundError("page", number)
	}
	if size < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page size", size, 1, math.MaxInt32)
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// check rejects pages past the last one. The first page always exists.
func (p Page) check(count int64) error {
	if p.Number == 1 || int64(p.Offset()) < count {
		return nil
	}
	return errs.NewObjectNotFoundError("page", p.Number)
}

// Paged is one page of a listing together with the size of the whole listing.
type Paged[T any] struct {
	Count   int64
	Page    Page
	Results []T
}

func (p Paged[T]) HasNext() bool {
	return int64(p.Page.Offset()+len(p.Results)) < p.Count
}

func (p Paged[T]) HasPrevious() bool {
	return p.Page.Number > 1
}
