package entities

// Page locates one window of the catalog. Number is 1-based; Total is the
// number of pages.
type Page struct {
	Number int
	Size   int
	Total  int
	Count  int
}

// NewPage builds a page with Number clamped into [1, Total]. An empty
// catalog still has one (empty) page.
func NewPage(number, size, count int) Page {
	total := max(TotalPages(count, size), 1)

	if number > total {
		number = total
	}
	if number < 1 {
		number = 1
	}

	return Page{Number: number, Size: size, Total: total, Count: count}
}

// Offset is the index of the first entry on the page
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// HasPrevious is false exactly on the first page
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasNext is false exactly on the last page
func (p Page) HasNext() bool {
	return p.Number < p.Total
}

// TotalPages returns ceil(count/size)
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}
