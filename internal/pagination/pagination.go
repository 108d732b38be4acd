// Package pagination builds the page-number sequence shown by paging
// controls. It is display logic only; offset math lives with the queries.
package pagination

import "strconv"

// Item is either a page number or the Ellipsis marker.
type Item int

// Ellipsis marks a run of skipped page numbers.
const Ellipsis Item = -1

func (i Item) String() string {
	if i == Ellipsis {
		return "…"
	}

	return strconv.Itoa(int(i))
}

// Generate returns the sequence of page numbers and ellipsis markers for the
// given total page count and current page. Callers clamp currentPage into
// [1, totalPages] before calling.
func Generate(totalPages, currentPage int) []Item {
	// Seven or fewer pages fit without collapsing anything.
	if totalPages <= 7 {
		items := make([]Item, totalPages)
		for i := range items {
			items[i] = Item(i + 1)
		}

		return items
	}

	if currentPage <= 3 {
		return []Item{1, 2, 3, Ellipsis, Item(totalPages - 1), Item(totalPages)}
	}

	if currentPage >= totalPages-2 {
		return []Item{1, 2, Ellipsis, Item(totalPages - 2), Item(totalPages - 1), Item(totalPages)}
	}

	return []Item{
		1,
		Ellipsis,
		Item(currentPage - 1),
		Item(currentPage),
		Item(currentPage + 1),
		Ellipsis,
		Item(totalPages),
	}
}
