package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id       int64
	name     string
	category string
	price    float64
	created  string
}

func (r item) Field(key string) (any, bool) {
	switch key {
	case "id":
		return r.id, true
	case "name":
		return r.name, true
	case "category":
		return r.category, true
	case "price":
		return r.price, true
	case "createdAt":
		return r.created, true
	}
	return nil, false
}

func itemColumns() []Column {
	return []Column{
		{Key: "id", Header: "ID"},
		{Key: "name", Header: "Name"},
		{Key: "category", Header: "Category"},
		{Key: "price", Header: "Price"},
		{
			Key:    "createdAt",
			Header: "Created At",
			Format: func(v any) string {
				if s, _ := v.(string); s == "2021-12-15" {
					return "Dec 15, 2021"
				}
				return "Invalid DateTime"
			},
		},
	}
}

func sampleItems() []item {
	return []item{
		{1, "Running Shoes", "Apparel", 80, "2021-12-15"},
		{2, "Laptop", "Electronics", 1200, "2021-12-15"},
		{3, "Tennis SHOES", "Apparel", 60, "2021-12-15"},
		{4, "Headphones", "Electronics", 150, "2021-12-15"},
		{5, "Coffee Mug", "Kitchen", 12, "2021-12-15"},
		{6, "shoes rack", "Home", 45, "2021-12-15"},
		{7, "Tablet", "Electronics", 400, "2021-12-15"},
		{8, "Camera", "Electronics", 650, "2021-12-15"},
	}
}

func numbered(n int) []item {
	rows := make([]item, n)
	for i := range rows {
		rows[i] = item{id: int64(i + 1), name: fmt.Sprintf("Item %02d", i+1), category: "Misc", price: 10}
	}
	return rows
}

func ids(rows []item) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}
	return out
}

func TestDeriveEmptyGlobalFilterKeepsAllRows(t *testing.T) {
	rows := sampleItems()
	v := Derive(rows, itemColumns(), NewState(100))
	assert.Equal(t, ids(rows), ids(v.Rows))
	assert.Equal(t, len(rows), v.Total)
}

func TestDeriveGlobalFilterIsCaseInsensitiveSubset(t *testing.T) {
	rows := sampleItems()
	s := Reduce(NewState(100), SetGlobalFilter{Text: "shoes"})
	v := Derive(rows, itemColumns(), s)

	assert.Equal(t, []int64{1, 3, 6}, ids(v.Rows))
	for _, r := range v.Rows {
		assert.Contains(t, strings.ToLower(r.name), "shoes")
	}
}

func TestDeriveGlobalFilterMatchesAnyColumn(t *testing.T) {
	rows := sampleItems()
	cols := itemColumns()

	for _, text := range []string{"a", "Elec", "12", "0", "ZZZ"} {
		s := Reduce(NewState(100), SetGlobalFilter{Text: text})
		v := Derive(rows, cols, s)
		for _, r := range v.Rows {
			found := false
			for _, c := range cols {
				raw := strings.ToLower(RawString(c.Value(r)))
				shown := strings.ToLower(c.Cell(r))
				if strings.Contains(raw, strings.ToLower(text)) || strings.Contains(shown, strings.ToLower(text)) {
					found = true
				}
			}
			assert.True(t, found, "row %d does not contain %q", r.id, text)
		}
	}
}

func TestDeriveGlobalFilterMatchesFormattedValue(t *testing.T) {
	s := Reduce(NewState(100), SetGlobalFilter{Text: "dec 15"})
	v := Derive(sampleItems(), itemColumns(), s)
	assert.Len(t, v.Rows, len(sampleItems()))
}

func TestDeriveGlobalFilterIgnoresVisibility(t *testing.T) {
	s := Reduce(NewState(100),
		ToggleColumn{Key: "category"},
		SetGlobalFilter{Text: "kitchen"},
	)
	v := Derive(sampleItems(), itemColumns(), s)

	assert.Equal(t, []int64{5}, ids(v.Rows))
	assert.Equal(t, -1, FindColumn(v.Columns, "category"))
}

func TestDeriveColumnFiltersCompose(t *testing.T) {
	rows := sampleItems()
	cols := itemColumns()

	one := Reduce(NewState(100), SetColumnFilter{Key: "category", Text: "electronics"})
	two := Reduce(one, SetColumnFilter{Key: "name", Text: "t"})

	v1 := Derive(rows, cols, one)
	v2 := Derive(rows, cols, two)

	assert.Equal(t, []int64{2, 4, 7, 8}, ids(v1.Rows))
	assert.Equal(t, []int64{2, 7}, ids(v2.Rows))
	assert.LessOrEqual(t, len(v2.Rows), len(v1.Rows))
}

func TestDeriveColumnFilterWithGlobalFilter(t *testing.T) {
	s := Reduce(NewState(100),
		SetColumnFilter{Key: "category", Text: "Electronics"},
		SetGlobalFilter{Text: "A"},
	)
	v := Derive(sampleItems(), itemColumns(), s)

	// Laptop, Headphones, Tablet and Camera all contain an "a" and are Electronics.
	assert.Equal(t, []int64{2, 4, 7, 8}, ids(v.Rows))
	for _, r := range v.Rows {
		assert.Equal(t, "Electronics", r.category)
	}

	s = Reduce(s, SetGlobalFilter{Text: "cam"})
	v = Derive(sampleItems(), itemColumns(), s)
	assert.Equal(t, []int64{8}, ids(v.Rows))
}

func TestDeriveSortPriceThenName(t *testing.T) {
	rows := []item{
		{1, "Zebra", "x", 20, ""},
		{2, "Mango", "x", 10, ""},
		{3, "Apple", "x", 20, ""},
	}
	s := Reduce(NewState(10))
	s, seq := BeginSort(s, []SortKey{{Key: "price"}, {Key: "name"}})
	s, ok := Complete(s, seq)
	require.True(t, ok)

	v := Derive(rows, itemColumns(), s)
	assert.Equal(t, []int64{2, 3, 1}, ids(v.Rows))
}

func TestSortRowsIsStable(t *testing.T) {
	rows := []item{
		{1, "b", "Kitchen", 5, ""},
		{2, "a", "Apparel", 5, ""},
		{3, "c", "Kitchen", 1, ""},
		{4, "d", "Apparel", 5, ""},
		{5, "e", "Kitchen", 5, ""},
	}
	SortRows(rows, itemColumns(), []SortKey{{Key: "price"}})
	assert.Equal(t, []int64{3, 1, 2, 4, 5}, ids(rows))

	SortRows(rows, itemColumns(), []SortKey{{Key: "category", Desc: true}})
	assert.Equal(t, []int64{3, 1, 5, 2, 4}, ids(rows))
}

func TestSortRowsNumericAndTextOrder(t *testing.T) {
	rows := []item{
		{10, "banana", "", 9, ""},
		{2, "Apple", "", 100, ""},
		{33, "cherry", "", 25.5, ""},
	}
	SortRows(rows, itemColumns(), []SortKey{{Key: "price"}})
	assert.Equal(t, []int64{10, 33, 2}, ids(rows))

	SortRows(rows, itemColumns(), []SortKey{{Key: "name"}})
	assert.Equal(t, []int64{2, 10, 33}, ids(rows))

	SortRows(rows, itemColumns(), []SortKey{{Key: "id", Desc: true}})
	assert.Equal(t, []int64{33, 10, 2}, ids(rows))
}

func TestSortRowsMissingValuesLast(t *testing.T) {
	rows := sampleItems()[:3]
	cols := append(itemColumns(), Column{Key: "missing", Header: "Missing"})
	SortRows(rows, cols, []SortKey{{Key: "missing", Desc: true}})
	assert.Equal(t, []int64{1, 2, 3}, ids(rows))
}

func TestDeriveUnsortedKeepsOriginalOrder(t *testing.T) {
	rows := sampleItems()
	v := Derive(rows, itemColumns(), NewState(100))
	assert.Equal(t, ids(sampleItems()), ids(v.Rows))
	// input is untouched
	assert.Equal(t, ids(sampleItems()), ids(rows))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(1, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 3, PageCount(25, 10))
}

func TestDerivePaginationReconstructsRows(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 30} {
		rows := numbered(n)
		s := NewState(10)
		first := Derive(rows, itemColumns(), s)

		var joined []item
		for p := 0; p < first.PageCount; p++ {
			s.PageIndex = p
			v := Derive(rows, itemColumns(), s)
			if p < first.PageCount-1 {
				assert.Len(t, v.Page, 10, "n=%d page=%d", n, p)
			}
			joined = append(joined, v.Page...)
		}
		assert.Equal(t, ids(first.Rows), ids(joined), "n=%d", n)
	}
}

func TestDeriveEmptyResultIsOnePage(t *testing.T) {
	s := Reduce(NewState(10), SetGlobalFilter{Text: "no such thing"})
	v := Derive(sampleItems(), itemColumns(), s)
	assert.Equal(t, 1, v.PageCount)
	assert.Equal(t, 0, v.PageIndex)
	assert.Empty(t, v.Page)
}

func TestDeriveTwentyFiveRowsLastPage(t *testing.T) {
	rows := numbered(25)
	s := NewState(10)
	v := Derive(rows, itemColumns(), s)
	require.Equal(t, 3, v.PageCount)

	s, seq, ok := BeginPage(s, 2, v.PageCount)
	require.True(t, ok)
	s, ok = Complete(s, seq)
	require.True(t, ok)

	v = Derive(rows, itemColumns(), s)
	assert.Equal(t, 2, v.PageIndex)
	assert.Equal(t, []int64{21, 22, 23, 24, 25}, ids(v.Page))
}

func TestDeriveClampsPageIndex(t *testing.T) {
	s := NewState(10)
	s.PageIndex = 7
	v := Derive(numbered(25), itemColumns(), s)
	assert.Equal(t, 2, v.PageIndex)
	assert.Len(t, v.Page, 5)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		index, pageCount, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{5, 3, 2},
		{-1, 3, 0},
		{4, 1, 0},
		{4, 0, 0},
	}
	for _, tt := range tests {
		s := NewState(10)
		s.PageIndex = tt.index
		assert.Equal(t, tt.want, ClampPage(s, tt.pageCount).PageIndex, "index %d of %d", tt.index, tt.pageCount)
	}
}

func TestVisibleColumns(t *testing.T) {
	cols := itemColumns()
	s := Reduce(NewState(10), ToggleColumn{Key: "name"}, ToggleColumn{Key: "price"})
	v := Derive(sampleItems(), cols, s)

	var keys []string
	for _, c := range v.Columns {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"id", "category", "createdAt"}, keys)
}

func TestColumnRenderUnknownKeyIsEmpty(t *testing.T) {
	c := Column{Key: "nope", Header: "Nope"}
	assert.Equal(t, "", c.Cell(sampleItems()[0]))
	assert.Equal(t, "80", Column{Key: "price"}.Cell(sampleItems()[0]))
	assert.Equal(t, "Dec 15, 2021", itemColumns()[4].Cell(sampleItems()[0]))
}
