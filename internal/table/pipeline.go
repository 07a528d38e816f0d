package table

import (
	"cmp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// View is the derived, display-ready form of a dataset under a State.
type View[R Row] struct {
	// Rows is the filtered and sorted sequence across all pages.
	Rows []R
	// Page holds the rows of the current page.
	Page []R
	// Columns are the visible columns in display order.
	Columns   []Column
	PageIndex int
	PageCount int
	Total     int
}

// Derive runs the pipeline: global filter, column filters, sort,
// column visibility, pagination. It does not modify rows or s.
func Derive[R Row](rows []R, columns []Column, s State) View[R] {
	out := make([]R, 0, len(rows))
	for _, r := range rows {
		if matchesGlobal(r, columns, s.GlobalFilter) && matchesColumns(r, columns, s.ColumnFilters) {
			out = append(out, r)
		}
	}

	SortRows(out, columns, s.Sorting)

	pageSize := s.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pageCount := PageCount(len(out), pageSize)
	pageIndex := ClampPage(s, pageCount).PageIndex
	start, end := PageBounds(len(out), pageSize, pageIndex)

	return View[R]{
		Rows:      out,
		Page:      out[start:end],
		Columns:   VisibleColumns(columns, s),
		PageIndex: pageIndex,
		PageCount: pageCount,
		Total:     len(rows),
	}
}

// VisibleColumns returns the columns the visibility map leaves displayed.
func VisibleColumns(columns []Column, s State) []Column {
	visible := make([]Column, 0, len(columns))
	for _, c := range columns {
		if s.IsVisible(c.Key) {
			visible = append(visible, c)
		}
	}
	return visible
}

// PageCount returns ceil(n/size). An empty result still has one page.
func PageCount(n, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage moves PageIndex into [0, pageCount). A page change that lands
// after a filter has shrunk the result is pulled back to the last page.
func ClampPage(s State, pageCount int) State {
	s.PageIndex = min(max(s.PageIndex, 0), max(pageCount-1, 0))
	return s
}

// PageBounds returns the half-open slice bounds of page index.
func PageBounds(n, size, index int) (int, int) {
	start := min(index*size, n)
	end := min(start+size, n)
	return start, end
}

// fold case-folds s. Casers are stateful, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsFold reports whether the raw or rendered value contains needle,
// ignoring case. needle must already be folded.
func containsFold(c Column, v any, needle string) bool {
	if v == nil {
		return false
	}
	raw := RawString(v)
	if strings.Contains(fold(raw), needle) {
		return true
	}
	if c.Format == nil {
		return false
	}
	return strings.Contains(fold(c.Render(v)), needle)
}

// matchesGlobal keeps a row when any column, hidden or not, contains text.
func matchesGlobal(r Row, columns []Column, text string) bool {
	if text == "" {
		return true
	}
	needle := fold(text)
	for _, c := range columns {
		if containsFold(c, c.Value(r), needle) {
			return true
		}
	}
	return false
}

// matchesColumns keeps a row only when every active column filter matches.
// Keys without a column definition match against the raw field.
func matchesColumns(r Row, columns []Column, filters map[string]string) bool {
	for key, text := range filters {
		if text == "" {
			continue
		}
		c := Column{Key: key}
		if i := FindColumn(columns, key); i >= 0 {
			c = columns[i]
		}
		if !containsFold(c, c.Value(r), fold(text)) {
			return false
		}
	}
	return true
}

// SortRows sorts rows in place by the descriptor. The sort is stable, so
// rows equal under every key keep their relative order. Missing values
// sort last regardless of direction.
func SortRows[R Row](rows []R, columns []Column, sorting []SortKey) {
	if len(sorting) == 0 {
		return
	}
	keys := make([]Column, len(sorting))
	for i, k := range sorting {
		keys[i] = Column{Key: k.Key}
		if j := FindColumn(columns, k.Key); j >= 0 {
			keys[i] = columns[j]
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for n, k := range sorting {
			c := compareValues(keys[n].Value(rows[i]), keys[n].Value(rows[j]), k.Desc)
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
}

// compareValues orders a before b. Numbers compare numerically, everything
// else as case-folded text. nil is always last.
func compareValues(a, b any, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	var c int
	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum && bNum {
		c = cmp.Compare(fa, fb)
	} else {
		c = strings.Compare(fold(RawString(a)), fold(RawString(b)))
	}
	if desc {
		return -c
	}
	return c
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
