package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState(0)
	assert.Equal(t, DefaultPageSize, s.PageSize)
	assert.False(t, s.Fade)
	assert.False(t, s.SettingsOpen)
	assert.False(t, s.FiltersOpen)
	assert.Equal(t, Idle, s.Transition.Phase)
	assert.Equal(t, 25, NewState(25).PageSize)
}

func TestSetColumnFilterUpsertsAndClears(t *testing.T) {
	s := Reduce(NewState(10), SetColumnFilter{Key: "name", Text: "lap"})
	assert.Equal(t, map[string]string{"name": "lap"}, s.ColumnFilters)

	s = Reduce(s, SetColumnFilter{Key: "name", Text: "tab"})
	assert.Equal(t, map[string]string{"name": "tab"}, s.ColumnFilters)

	s = Reduce(s, SetColumnFilter{Key: "name", Text: ""})
	assert.Empty(t, s.ColumnFilters)
}

func TestSetColumnFilterDoesNotMutatePrevious(t *testing.T) {
	before := Reduce(NewState(10), SetColumnFilter{Key: "name", Text: "lap"})
	after := Reduce(before, SetColumnFilter{Key: "category", Text: "elec"})

	assert.Equal(t, map[string]string{"name": "lap"}, before.ColumnFilters)
	assert.Equal(t, map[string]string{"name": "lap", "category": "elec"}, after.ColumnFilters)
}

func TestClearColumnFiltersIdempotent(t *testing.T) {
	empty := NewState(10)
	assert.Equal(t, empty, Reduce(empty, ClearColumnFilters{}))

	s := Reduce(empty, SetColumnFilter{Key: "name", Text: "x"}, ClearColumnFilters{})
	assert.Empty(t, s.ColumnFilters)
	assert.Equal(t, s, Reduce(s, ClearColumnFilters{}))
}

func TestFilterChangesResetPage(t *testing.T) {
	s := NewState(10)
	s.PageIndex = 3

	assert.Equal(t, 0, Reduce(s, SetGlobalFilter{Text: "a"}).PageIndex)
	assert.Equal(t, 0, Reduce(s, SetColumnFilter{Key: "name", Text: "a"}).PageIndex)
	assert.Equal(t, 3, Reduce(s, SetGlobalFilter{Text: ""}).PageIndex)
	assert.Equal(t, 3, Reduce(s, ToggleColumn{Key: "name"}).PageIndex)
}

func TestToggleColumnTwiceRestoresVisibility(t *testing.T) {
	s := NewState(10)
	assert.True(t, s.IsVisible("price"))

	once := Reduce(s, ToggleColumn{Key: "price"})
	assert.False(t, once.IsVisible("price"))
	assert.True(t, once.IsVisible("name"))

	twice := Reduce(once, ToggleColumn{Key: "price"})
	assert.True(t, twice.IsVisible("price"))
	assert.False(t, once.IsVisible("price"), "earlier state must not change")
}

func TestShowAllColumnsIdempotent(t *testing.T) {
	s := Reduce(NewState(10), ToggleColumn{Key: "price"}, ToggleColumn{Key: "name"})

	once := Reduce(s, ShowAllColumns{})
	twice := Reduce(once, ShowAllColumns{})

	assert.Equal(t, once.Visibility, twice.Visibility)
	assert.True(t, twice.IsVisible("price"))
	assert.True(t, twice.IsVisible("name"))
}

func TestSidebarTogglesAreIndependent(t *testing.T) {
	s := Reduce(NewState(10), ToggleSettings{}, ToggleFilters{})
	assert.True(t, s.SettingsOpen)
	assert.True(t, s.FiltersOpen)

	s = Reduce(s, ToggleSettings{})
	assert.False(t, s.SettingsOpen)
	assert.True(t, s.FiltersOpen)
}

func TestCycleSort(t *testing.T) {
	var sorting []SortKey

	sorting = CycleSort(sorting, "price")
	assert.Equal(t, []SortKey{{Key: "price"}}, sorting)

	sorting = CycleSort(sorting, "price")
	assert.Equal(t, []SortKey{{Key: "price", Desc: true}}, sorting)

	sorting = CycleSort(sorting, "price")
	assert.Empty(t, sorting)

	sorting = CycleSort([]SortKey{{Key: "price", Desc: true}}, "name")
	assert.Equal(t, []SortKey{{Key: "name"}}, sorting)
}

func TestSortDirection(t *testing.T) {
	s := NewState(10)
	s.Sorting = []SortKey{{Key: "price", Desc: true}}

	desc, ok := s.SortDirection("price")
	assert.True(t, ok)
	assert.True(t, desc)

	_, ok = s.SortDirection("name")
	assert.False(t, ok)
}

func TestMeta(t *testing.T) {
	cols := itemColumns()
	s := NewState(10)
	assert.Equal(t, "", s.Meta(cols))

	s.Sorting = []SortKey{{Key: "price", Desc: true}}
	s = Reduce(s, SetGlobalFilter{Text: "cam"}, SetColumnFilter{Key: "category", Text: "elec"})
	assert.Equal(t, `sort PRICE desc  ·  search "cam"  ·  filter CATEGORY="elec"`, s.Meta(cols))
}
