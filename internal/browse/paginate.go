package browse

// Paginate returns page pageIndex (zero-based) of items. It performs no
// clamping: a negative or out-of-range index, or a non-positive page size,
// yields an empty slice.
func Paginate[T any](items []T, pageSize, pageIndex int) []T {
	if pageSize <= 0 || pageIndex < 0 {
		return []T{}
	}
	start := pageIndex * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// PageCount returns ceil(n / pageSize).
func PageCount(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Pager is the page cursor of a result list. It is a value owned by the
// shell loop and passed into Paginate; moving returns a new Pager.
type Pager struct {
	Index int
	Size  int
	Len   int
}

// NewPager returns a Pager on the first page of n items.
func NewPager(n, size int) Pager {
	return Pager{Index: 0, Size: size, Len: n}
}

// Count returns the number of pages.
func (p Pager) Count() int {
	return PageCount(p.Len, p.Size)
}

// HasNext reports whether a following page exists.
func (p Pager) HasNext() bool {
	return p.Index+1 < p.Count()
}

// HasPrev reports whether a preceding page exists.
func (p Pager) HasPrev() bool {
	return p.Index > 0
}

// Next moves to the following page, staying on the last one.
func (p Pager) Next() Pager {
	if p.HasNext() {
		p.Index++
	}
	return p
}

// Prev moves to the preceding page, staying on the first one.
func (p Pager) Prev() Pager {
	if p.HasPrev() {
		p.Index--
	}
	return p
}

// Bounds returns the half-open item range [start, end) of the current
// page, used to number rows.
func (p Pager) Bounds() (int, int) {
	if p.Size <= 0 || p.Index < 0 {
		return 0, 0
	}
	start := min(p.Index*p.Size, p.Len)
	end := min(start+p.Size, p.Len)
	return start, end
}

// PageOf returns the current page of items.
func PageOf[T any](items []T, p Pager) []T {
	return Paginate(items, p.Size, p.Index)
}
