package catalog

import "errors"

// Page sizes of the two browsing flows.
const (
	HomePageSize   = 9 // authenticated flow, load-more control
	PublicPageSize = 5 // alternate flow, previous/next controls
)

// ErrIndexOutOfRange reports an index outside the current filtered set.
var ErrIndexOutOfRange = errors.New("index out of range")

// View is the in-memory working set the pages browse over: the full
// aggregate, the current category filter and the pagination cursor. Products
// are held by pointer so a local edit shows up in every slice of the view.
type View struct {
	all      []*Product
	filtered []*Product
	category string
	page     int
	pageSize int
}

// NewView wraps a loaded aggregate. The view starts unfiltered on the first
// page.
func NewView(products []Product, pageSize int) *View {
	all := make([]*Product, len(products))
	for i := range products {
		p := products[i]
		all[i] = &p
	}
	return &View{all: all, filtered: all, category: "all", pageSize: pageSize}
}

// Filter narrows the view to one category ("all" restores the full set) and
// resets to the first page.
func (v *View) Filter(category string) {
	v.category = category
	if category == "all" {
		v.filtered = v.all
	} else {
		filtered := make([]*Product, 0, len(v.all))
		for _, p := range v.all {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		v.filtered = filtered
	}
	v.page = 0
}

// Page returns the products in the current window.
func (v *View) Page() []*Product {
	start := v.page * v.pageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + v.pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

// HasMore reports whether anything follows the current window; the load-more
// control hides when it is false.
func (v *View) HasMore() bool {
	return (v.page+1)*v.pageSize < len(v.filtered)
}

func (v *View) HasPrevious() bool { return v.page > 0 }

// Next advances one page; it reports false at the last page.
func (v *View) Next() bool {
	if !v.HasMore() {
		return false
	}
	v.page++
	return true
}

// Previous steps one page back; it reports false on the first page.
func (v *View) Previous() bool {
	if !v.HasPrevious() {
		return false
	}
	v.page--
	return true
}

// PageNumber is 1-based for display.
func (v *View) PageNumber() int { return v.page + 1 }

func (v *View) PageCount() int {
	return (len(v.filtered) + v.pageSize - 1) / v.pageSize
}

func (v *View) Category() string { return v.category }

func (v *View) Len() int { return len(v.all) }

func (v *View) FilteredLen() int { return len(v.filtered) }

// EditLocal rewrites name, category and price on the item at index i of the
// filtered set. Only the local copy changes; the server never sees the edit,
// so it lasts until the next full Load.
func (v *View) EditLocal(i int, name, category string, price float64) error {
	if i < 0 || i >= len(v.filtered) {
		return ErrIndexOutOfRange
	}
	p := v.filtered[i]
	p.Name = name
	p.Category = category
	p.Price = price
	return nil
}

// RemoveLocal drops the item at index i of the filtered set from the whole
// working set. Like EditLocal this never reaches the server.
func (v *View) RemoveLocal(i int) error {
	if i < 0 || i >= len(v.filtered) {
		return ErrIndexOutOfRange
	}
	target := v.filtered[i]
	v.filtered = append(v.filtered[:i:i], v.filtered[i+1:]...)
	for j, p := range v.all {
		if p == target {
			v.all = append(v.all[:j:j], v.all[j+1:]...)
			break
		}
	}
	return nil
}
