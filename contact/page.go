package contact

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 10

	// windowRadius is how many page links are shown on each side of the
	// current page.
	windowRadius = 2
)

// PageRequest selects one page of the contact list. Use NewPageRequest to
// build a normalized value.
type PageRequest struct {
	Page int
	Per  int
}

// NewPageRequest coerces non-positive values to the defaults. It never fails.
func NewPageRequest(page, per int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if per < 1 {
		per = DefaultPerPage
	}
	return PageRequest{Page: page, Per: per}
}

// Offset returns (Page-1)*Per, saturating at math.MaxInt.
func (r PageRequest) Offset() int {
	if r.Page < 1 || r.Per < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Per {
		return math.MaxInt
	}
	return (r.Page - 1) * r.Per
}

func (r PageRequest) Limit() int {
	return r.Per
}

// PastEnd reports whether the page starts beyond the last of total rows.
// The first page is never past the end.
func (r PageRequest) PastEnd(total int64) bool {
	return r.Page > 1 && int64(r.Offset()) >= total
}

// Page is one page of contacts, most recently added first, together with
// everything needed to draw the pagination controls.
type Page struct {
	Items    []Contact `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Per      int       `json:"per"`
	Pages    int       `json:"pages"`
	HasPrev  bool      `json:"has_prev"`
	HasNext  bool      `json:"has_next"`
	PrevPage int       `json:"prev_page"`
	NextPage int       `json:"next_page"`
	Window   []int     `json:"window"`
}

// NewPage computes the pagination fields for items fetched with req out of
// total rows. A page past the last one is kept as requested: it carries no
// items and has no next page.
func NewPage(req PageRequest, total int64, items []Contact) Page {
	if items == nil {
		items = []Contact{}
	}

	pages := PageCount(total, req.Per)
	next := req.Page
	if next < math.MaxInt {
		next++
	}
	return Page{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		Per:      req.Per,
		Pages:    pages,
		HasPrev:  req.Page > 1,
		HasNext:  req.Page < pages,
		PrevPage: req.Page - 1,
		NextPage: next,
		Window:   Window(req.Page, pages),
	}
}

// PageCount returns max(1, ceil(total/per)).
func PageCount(total int64, per int) int {
	if per < 1 || total <= 0 {
		return 1
	}
	n := total / int64(per)
	if total%int64(per) != 0 {
		n++
	}
	return int(n)
}

// Window returns the page numbers to link to around page, clamped to
// [1, pages].
func Window(page, pages int) []int {
	window := make([]int, 0, 2*windowRadius+1)
	if page-windowRadius > pages {
		return window
	}

	start := max(1, page-windowRadius)
	end := pages
	if page <= pages-windowRadius {
		end = page + windowRadius
	}
	for i := 0; i <= end-start; i++ {
		window = append(window, start+i)
	}
	return window
}
