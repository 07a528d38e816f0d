package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"prodtable/internal/model"
	"prodtable/internal/table"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Options configures the table screen.
type Options struct {
	PageSize int
	Title    string
	Logger   zerolog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	rows    []model.Product
	columns []table.Column
	state   table.State
	view    table.View[model.Product]

	title  string
	focus  model.Focus
	width  int
	height int
	info   string

	search         textinput.Model
	filterInputs   []textinput.Model
	filterCursor   int
	settingsCursor int
	activeColumn   int
	cursor         int

	keys      KeyMap
	panelKeys PanelKeyMap
	help      help.Model
	log       zerolog.Logger
}

// mountMsg fades the table in once the program starts.
type mountMsg struct{}

// New creates a new root model over a fixed dataset and column schema.
func New(rows []model.Product, columns []table.Column, opts Options) Model {
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "⌕ "
	search.CharLimit = 100

	inputs := make([]textinput.Model, len(columns))
	for i, c := range columns {
		in := textinput.New()
		in.Placeholder = "filter " + strings.ToLower(c.Header)
		in.Prompt = ""
		in.CharLimit = 64
		in.Width = filterInputWidth
		inputs[i] = in
	}

	title := opts.Title
	if title == "" {
		title = "prodtable"
	}

	m := Model{
		rows:         rows,
		columns:      columns,
		state:        table.NewState(opts.PageSize),
		title:        title,
		focus:        model.FocusTable,
		search:       search,
		filterInputs: inputs,
		keys:         DefaultKeyMap(),
		panelKeys:    DefaultPanelKeyMap(),
		help:         help.New(),
		log:          opts.Logger,
	}
	m.help.Styles.ShortKey = HelpKeyStyle
	m.help.Styles.ShortDesc = HelpDescStyle
	m.help.Styles.FullKey = HelpKeyStyle
	m.help.Styles.FullDesc = HelpDescStyle
	m.refresh()
	return m
}

// State returns the current table state.
func (m Model) State() table.State {
	return m.state
}

// Derived returns the rows and columns currently on screen.
func (m Model) Derived() table.View[model.Product] {
	return m.view
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return mountMsg{} }
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(10, msg.Width/3)
		return m, nil

	case mountMsg:
		m.state = table.Mount(m.state)
		return m, nil

	case model.TransitionMsg:
		next, ok := table.Complete(m.state, msg.Seq)
		if !ok {
			m.log.Debug().Int("seq", msg.Seq).Int("current", m.state.Transition.Seq).Msg("stale transition ignored")
			return m, nil
		}
		m.state = next
		m.refresh()
		m.log.Debug().Int("seq", msg.Seq).Int("page", m.view.PageIndex).Msg("transition complete")
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case model.FocusSearch:
			return m.handleSearchKey(msg)
		case model.FocusSettings:
			return m.handleSettingsKey(msg)
		case model.FocusFilters:
			return m.handleFiltersKey(msg)
		}
		return m.handleTableKey(msg)
	}

	if m.focus == model.FocusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	if m.focus == model.FocusFilters && m.filterCursor < len(m.filterInputs) {
		var cmd tea.Cmd
		m.filterInputs[m.filterCursor], cmd = m.filterInputs[m.filterCursor].Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh recomputes the derived view and keeps cursors in range.
func (m *Model) refresh() {
	m.view = table.Derive(m.rows, m.columns, m.state)
	m.state = table.ClampPage(m.state, m.view.PageCount)
	if m.cursor >= len(m.view.Page) {
		m.cursor = max(0, len(m.view.Page)-1)
	}
	m.ensureVisibleActiveColumn()
}

func transitionCmd(seq int) tea.Cmd {
	return tea.Tick(table.TransitionDelay, func(time.Time) tea.Msg {
		return model.TransitionMsg{Seq: seq}
	})
}

// handleTableKey handles input while the table has focus.
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, k.Search):
		m.focus = model.FocusSearch
		return m, m.search.Focus()
	case key.Matches(msg, k.ClearSearch):
		if m.state.GlobalFilter == "" {
			return m, nil
		}
		m.search.SetValue("")
		return m, m.setGlobalFilter("")
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.view.Page)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, k.NextColumn):
		m.nextColumn()
		return m, nil
	case key.Matches(msg, k.PrevColumn):
		m.prevColumn()
		return m, nil
	case key.Matches(msg, k.Sort):
		return m, m.cycleSortActiveColumn()
	case key.Matches(msg, k.HideColumn):
		if len(m.columns) == 0 {
			return m, nil
		}
		c := m.columns[m.activeColumn]
		m.toggleColumn(c.Key)
		if m.state.IsVisible(c.Key) {
			m.info = fmt.Sprintf("Column %s shown", c.Header)
		} else {
			m.info = fmt.Sprintf("Column %s hidden", c.Header)
		}
		return m, nil
	case key.Matches(msg, k.ShowColumns):
		m.showAllColumns()
		m.info = "All columns shown"
		return m, nil
	case key.Matches(msg, k.Settings):
		return m, m.toggleSettings()
	case key.Matches(msg, k.Filters):
		return m, m.toggleFilters()
	case key.Matches(msg, k.ClearFilter):
		m.clearColumnFilters()
		m.info = "Filters cleared"
		return m, nil
	case key.Matches(msg, k.FocusNext):
		return m, m.focusNext()
	case key.Matches(msg, k.PrevPage):
		return m, m.goToPage(m.view.PageIndex - 1)
	case key.Matches(msg, k.NextPage):
		return m, m.goToPage(m.view.PageIndex + 1)
	case key.Matches(msg, k.JumpPage):
		n, _ := strconv.Atoi(msg.String())
		return m, m.goToPage(n - 1)
	}
	return m, nil
}

// handleSearchKey handles input while the search box has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.panelKeys.Done) {
		m.search.Blur()
		m.focus = model.FocusTable
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.state.GlobalFilter {
		return m, tea.Batch(cmd, m.setGlobalFilter(v))
	}
	return m, cmd
}

// handleSettingsKey handles input while the column sidebar has focus.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.panelKeys
	switch {
	case key.Matches(msg, p.Close), msg.String() == "o":
		return m, m.toggleSettings()
	case key.Matches(msg, p.FocusNext):
		return m, m.focusNext()
	case key.Matches(msg, p.Up), msg.String() == "k":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, p.Down), msg.String() == "j":
		if m.settingsCursor < len(m.columns)-1 {
			m.settingsCursor++
		}
	case key.Matches(msg, p.Toggle):
		if m.settingsCursor < len(m.columns) {
			m.toggleColumn(m.columns[m.settingsCursor].Key)
		}
	case key.Matches(msg, p.ShowAll):
		m.showAllColumns()
	}
	return m, nil
}

// handleFiltersKey handles input while the filter sidebar has focus.
func (m Model) handleFiltersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.panelKeys
	switch {
	case key.Matches(msg, p.Close):
		return m, m.toggleFilters()
	case key.Matches(msg, p.FocusNext):
		return m, m.focusNext()
	case key.Matches(msg, p.Clear):
		m.clearColumnFilters()
		return m, nil
	case key.Matches(msg, p.Up):
		return m, m.focusFilterInput(m.filterCursor - 1)
	case key.Matches(msg, p.Down):
		return m, m.focusFilterInput(m.filterCursor + 1)
	}

	if m.filterCursor >= len(m.filterInputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterCursor], cmd = m.filterInputs[m.filterCursor].Update(msg)
	m.setColumnFilter(m.columns[m.filterCursor].Key, m.filterInputs[m.filterCursor].Value())
	return m, cmd
}

// setGlobalFilter applies the search text at once and pulses the fade.
func (m *Model) setGlobalFilter(text string) tea.Cmd {
	m.state = table.Reduce(m.state, table.SetGlobalFilter{Text: text})
	var seq int
	m.state, seq = table.BeginFade(m.state)
	m.refresh()
	m.log.Debug().Str("filter", text).Int("seq", seq).Int("rows", len(m.view.Rows)).Msg("global filter set")
	return transitionCmd(seq)
}

func (m *Model) setColumnFilter(key, text string) {
	if m.state.ColumnFilters[key] == text {
		return
	}
	m.state = table.Reduce(m.state, table.SetColumnFilter{Key: key, Text: text})
	m.refresh()
	m.log.Debug().Str("column", key).Str("filter", text).Int("rows", len(m.view.Rows)).Msg("column filter set")
}

func (m *Model) clearColumnFilters() {
	m.state = table.Reduce(m.state, table.ClearColumnFilters{})
	for i := range m.filterInputs {
		m.filterInputs[i].SetValue("")
	}
	m.refresh()
}

func (m *Model) toggleColumn(key string) {
	m.state = table.Reduce(m.state, table.ToggleColumn{Key: key})
	m.refresh()
}

func (m *Model) showAllColumns() {
	m.state = table.Reduce(m.state, table.ShowAllColumns{})
	m.refresh()
}

// toggleSettings opens the column sidebar and focuses it, or closes it.
func (m *Model) toggleSettings() tea.Cmd {
	m.state = table.Reduce(m.state, table.ToggleSettings{})
	if m.state.SettingsOpen {
		return m.setFocus(model.FocusSettings)
	}
	if m.focus == model.FocusSettings {
		return m.focusFallback()
	}
	return nil
}

// toggleFilters opens the filter sidebar and focuses it, or closes it.
func (m *Model) toggleFilters() tea.Cmd {
	m.state = table.Reduce(m.state, table.ToggleFilters{})
	if m.state.FiltersOpen {
		return m.setFocus(model.FocusFilters)
	}
	if m.focus == model.FocusFilters {
		return m.focusFallback()
	}
	return nil
}

// focusNext cycles focus: table, settings sidebar, filter sidebar.
// Closed sidebars are skipped.
func (m *Model) focusNext() tea.Cmd {
	order := []model.Focus{model.FocusTable}
	if m.state.SettingsOpen {
		order = append(order, model.FocusSettings)
	}
	if m.state.FiltersOpen {
		order = append(order, model.FocusFilters)
	}
	next := model.FocusTable
	for i, f := range order {
		if f == m.focus {
			next = order[(i+1)%len(order)]
			break
		}
	}
	return m.setFocus(next)
}

// focusFallback moves focus to a sidebar that is still open, or the table.
func (m *Model) focusFallback() tea.Cmd {
	switch {
	case m.state.FiltersOpen:
		return m.setFocus(model.FocusFilters)
	case m.state.SettingsOpen:
		return m.setFocus(model.FocusSettings)
	default:
		return m.setFocus(model.FocusTable)
	}
}

func (m *Model) setFocus(f model.Focus) tea.Cmd {
	if m.focus == model.FocusFilters && f != model.FocusFilters && m.filterCursor < len(m.filterInputs) {
		m.filterInputs[m.filterCursor].Blur()
	}
	m.focus = f
	if f == model.FocusFilters {
		return m.focusFilterInput(m.filterCursor)
	}
	return nil
}

func (m *Model) focusFilterInput(i int) tea.Cmd {
	if len(m.filterInputs) == 0 {
		return nil
	}
	i = min(max(i, 0), len(m.filterInputs)-1)
	m.filterInputs[m.filterCursor].Blur()
	m.filterCursor = i
	return m.filterInputs[i].Focus()
}

// goToPage starts a deferred move to page index. The current page and
// indexes without a page button do nothing.
func (m *Model) goToPage(index int) tea.Cmd {
	next, seq, ok := table.BeginPage(m.state, index, m.view.PageCount)
	if !ok {
		return nil
	}
	m.state = next
	m.cursor = 0
	m.log.Debug().Int("page", index).Int("seq", seq).Msg("page change started")
	return transitionCmd(seq)
}

// cycleSortActiveColumn advances the active column through
// unsorted, ascending, descending. The new order applies after the fade.
func (m *Model) cycleSortActiveColumn() tea.Cmd {
	if len(m.columns) == 0 {
		return nil
	}
	c := m.columns[m.activeColumn]
	sorting := table.CycleSort(m.state.Sorting, c.Key)
	var seq int
	m.state, seq = table.BeginSort(m.state, sorting)
	m.cursor = 0

	label := strings.ToUpper(c.Header)
	switch {
	case len(sorting) == 0:
		m.info = "Sorting cleared"
	case sorting[0].Desc:
		m.info = fmt.Sprintf("Sorted %s descending", label)
	default:
		m.info = fmt.Sprintf("Sorted %s ascending", label)
	}
	m.log.Debug().Str("column", c.Key).Int("seq", seq).Msg("sort change started")
	return transitionCmd(seq)
}

func (m *Model) ensureVisibleActiveColumn() {
	if len(m.columns) == 0 || m.state.IsVisible(m.columns[m.activeColumn].Key) {
		return
	}
	for i := range m.columns {
		idx := (m.activeColumn + i) % len(m.columns)
		if m.state.IsVisible(m.columns[idx].Key) {
			m.activeColumn = idx
			return
		}
	}
}

func (m *Model) nextColumn() {
	if len(m.columns) == 0 {
		return
	}
	start := m.activeColumn
	for {
		m.activeColumn = (m.activeColumn + 1) % len(m.columns)
		if m.state.IsVisible(m.columns[m.activeColumn].Key) || m.activeColumn == start {
			return
		}
	}
}

func (m *Model) prevColumn() {
	if len(m.columns) == 0 {
		return
	}
	start := m.activeColumn
	for {
		m.activeColumn--
		if m.activeColumn < 0 {
			m.activeColumn = len(m.columns) - 1
		}
		if m.state.IsVisible(m.columns[m.activeColumn].Key) || m.activeColumn == start {
			return
		}
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.renderHeader()
	toolbar := m.renderToolbar()
	pagination := m.renderPagination()
	status := m.renderStatus()
	footer := FooterStyle.Width(m.width).Render(m.help.View(helpFor(m.focus, m.keys, m.panelKeys)))

	parts := []string{header, toolbar}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}

	used := 0
	for _, p := range append(parts, pagination, status, footer) {
		used += lipgloss.Height(p)
	}
	contentHeight := max(1, m.height-used)

	var panels []string
	if m.state.SettingsOpen {
		panels = append(panels, m.renderSettings(contentHeight))
	}
	if m.state.FiltersOpen {
		panels = append(panels, m.renderFilters(contentHeight))
	}
	tableWidth := m.width
	for _, p := range panels {
		tableWidth -= lipgloss.Width(p)
	}

	tableWidth = max(0, tableWidth)
	body := lipgloss.NewStyle().
		MaxWidth(tableWidth).
		MaxHeight(contentHeight).
		Render(m.renderTable(tableWidth, contentHeight))
	body = lipgloss.Place(tableWidth, contentHeight, lipgloss.Left, lipgloss.Top, body)
	if len(panels) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, append([]string{body}, panels...)...)
	}

	parts = append(parts, body, pagination, status, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
