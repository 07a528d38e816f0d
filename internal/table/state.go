package table

import (
	"fmt"
	"strings"
)

// DefaultPageSize is the number of rows per page when none is configured.
const DefaultPageSize = 10

// SortKey is one entry of a sort descriptor. The first key is primary.
type SortKey struct {
	Key  string
	Desc bool
}

// State is the complete interactive table state for one render cycle.
// Values are never mutated in place; actions return a new State.
type State struct {
	Sorting       []SortKey
	GlobalFilter  string
	ColumnFilters map[string]string
	Visibility    map[string]bool
	PageIndex     int
	PageSize      int

	SettingsOpen bool
	FiltersOpen  bool
	Fade         bool

	Transition Transition
}

// NewState returns the state a freshly mounted table starts from.
func NewState(pageSize int) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return State{PageSize: pageSize}
}

// IsVisible reports whether the column with key is displayed.
func (s State) IsVisible(key string) bool {
	visible, ok := s.Visibility[key]
	return !ok || visible
}

// SortDirection returns the direction the column is sorted in, if any.
func (s State) SortDirection(key string) (desc bool, sorted bool) {
	for _, k := range s.Sorting {
		if k.Key == key {
			return k.Desc, true
		}
	}
	return false, false
}

// Meta summarises sort and filter state for the status line.
func (s State) Meta(columns []Column) string {
	var parts []string
	if len(s.Sorting) > 0 {
		keys := make([]string, 0, len(s.Sorting))
		for _, k := range s.Sorting {
			order := "asc"
			if k.Desc {
				order = "desc"
			}
			keys = append(keys, fmt.Sprintf("%s %s", strings.ToUpper(headerFor(columns, k.Key)), order))
		}
		parts = append(parts, "sort "+strings.Join(keys, ", "))
	}
	if s.GlobalFilter != "" {
		parts = append(parts, fmt.Sprintf("search %q", s.GlobalFilter))
	}
	for _, c := range columns {
		if v := s.ColumnFilters[c.Key]; v != "" {
			parts = append(parts, fmt.Sprintf("filter %s=%q", strings.ToUpper(c.Header), v))
		}
	}
	return strings.Join(parts, "  ·  ")
}

func headerFor(columns []Column, key string) string {
	if i := FindColumn(columns, key); i >= 0 {
		return columns[i].Header
	}
	return key
}

// Action is a user-initiated state change.
type Action interface {
	Apply(s State) State
}

// Reduce applies each action in order.
func Reduce(s State, actions ...Action) State {
	for _, a := range actions {
		s = a.Apply(s)
	}
	return s
}

// SetGlobalFilter replaces the global filter text. The change applies at
// once; callers start a fade pulse with BeginFade.
type SetGlobalFilter struct {
	Text string
}

func (a SetGlobalFilter) Apply(s State) State {
	if s.GlobalFilter == a.Text {
		return s
	}
	s.GlobalFilter = a.Text
	s.PageIndex = 0
	return s
}

// SetColumnFilter upserts a column filter. Empty text clears the entry.
type SetColumnFilter struct {
	Key  string
	Text string
}

func (a SetColumnFilter) Apply(s State) State {
	if s.ColumnFilters[a.Key] == a.Text {
		return s
	}
	filters := make(map[string]string, len(s.ColumnFilters)+1)
	for k, v := range s.ColumnFilters {
		filters[k] = v
	}
	if a.Text == "" {
		delete(filters, a.Key)
	} else {
		filters[a.Key] = a.Text
	}
	if len(filters) == 0 {
		filters = nil
	}
	s.ColumnFilters = filters
	s.PageIndex = 0
	return s
}

// ClearColumnFilters empties the column filter map.
type ClearColumnFilters struct{}

func (ClearColumnFilters) Apply(s State) State {
	if len(s.ColumnFilters) == 0 {
		return s
	}
	s.ColumnFilters = nil
	s.PageIndex = 0
	return s
}

// ToggleColumn flips a column's visibility. Absent keys count as visible.
type ToggleColumn struct {
	Key string
}

func (a ToggleColumn) Apply(s State) State {
	visibility := make(map[string]bool, len(s.Visibility)+1)
	for k, v := range s.Visibility {
		visibility[k] = v
	}
	visibility[a.Key] = !s.IsVisible(a.Key)
	s.Visibility = visibility
	return s
}

// ShowAllColumns empties the visibility map so every column defaults to visible.
type ShowAllColumns struct{}

func (ShowAllColumns) Apply(s State) State {
	s.Visibility = nil
	return s
}

// ToggleSettings opens or closes the column visibility sidebar.
type ToggleSettings struct{}

func (ToggleSettings) Apply(s State) State {
	s.SettingsOpen = !s.SettingsOpen
	return s
}

// ToggleFilters opens or closes the column filter sidebar.
type ToggleFilters struct{}

func (ToggleFilters) Apply(s State) State {
	s.FiltersOpen = !s.FiltersOpen
	return s
}

// CycleSort returns the descriptor a header click on key produces:
// unsorted, ascending, descending, then unsorted again. Only one key is kept.
func CycleSort(sorting []SortKey, key string) []SortKey {
	for _, k := range sorting {
		if k.Key != key {
			continue
		}
		if !k.Desc {
			return []SortKey{{Key: key, Desc: true}}
		}
		return nil
	}
	return []SortKey{{Key: key}}
}
