package analytics

// TotalPages is ceil(count/pageSize), but never below 1: an empty
// collection still renders as "page 1 of 1". pageSize under 1 is
// treated as a single page holding everything.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count <= pageSize {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate slices rows into the fixed-size page at pageIndex and
// reports the total page count. It does not clamp pageIndex; callers
// navigate through a Pager so an out-of-range index never reaches it,
// and if one does the page comes back empty.
func Paginate[T any](rows []T, pageSize, pageIndex int) ([]T, int) {
	total := TotalPages(len(rows), pageSize)
	if pageSize < 1 {
		return rows, total
	}
	start := pageIndex * pageSize
	if pageIndex < 0 || start >= len(rows) {
		return []T{}, total
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total
}

// Pager owns the caller side of the pagination contract: every
// navigation clamps into [0, TotalPages-1].
type Pager struct {
	size  int
	pages int
	index int
}

func NewPager(pageSize, count int) *Pager {
	return &Pager{size: pageSize, pages: TotalPages(count, pageSize)}
}

func (p *Pager) Size() int       { return p.size }
func (p *Pager) Index() int      { return p.index }
func (p *Pager) TotalPages() int { return p.pages }

func (p *Pager) Next() int {
	return p.Goto(p.index + 1)
}

func (p *Pager) Prev() int {
	return p.Goto(p.index - 1)
}

func (p *Pager) Goto(i int) int {
	if i < 0 {
		i = 0
	}
	if i > p.pages-1 {
		i = p.pages - 1
	}
	p.index = i
	return p.index
}
