package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/homec-dev/homec/pkg/app"
	"github.com/homec-dev/homec/pkg/datekey"
	"github.com/homec-dev/homec/pkg/event"
	"github.com/homec-dev/homec/pkg/store"
	"github.com/homec-dev/homec/pkg/ui/calendar"
	"github.com/homec-dev/homec/pkg/viewmodel"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeAgenda
	modeHelp
)

const normalHelp = "←/→/↑/↓ move day, [/] month, j/k pick event, a add, i edit, d delete, f filter, p priority, w week, r reload, ? help, q quit"

// Model holds the interactive calendar state.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	// selected is the date key of the cursor day.
	selected string
	// eventIndex picks an event within the selected day.
	eventIndex int

	categories []string // filter cycle, "all" first
	catIndex   int
	priority   bool

	input   textinput.Model
	editing string // event id being edited, "" while adding

	status string

	// changes streams dataset-file notifications; nil when not watching.
	changes  <-chan store.Event
	dataPath string

	termWidth  int
	termHeight int
}

// New creates the UI model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Title #category @time !high"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	cats := []string{viewmodel.AllCategories}
	keys := make([]string, 0, len(svc.Document().Categories))
	for k := range svc.Document().Categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cats = append(cats, keys...)

	m := Model{
		svc:        svc,
		ctx:        context.Background(),
		mode:       modeNormal,
		selected:   datekey.Today(),
		categories: cats,
		input:      ti,
		status:     normalHelp,
	}
	m.clampToHorizon()
	return m
}

// clampToHorizon moves the cursor into the loaded months when today falls
// outside the dataset.
func (m *Model) clampToHorizon() {
	ids := m.svc.MonthIDs()
	if len(ids) == 0 {
		return
	}
	monthID := datekey.MonthID(m.selected)
	for _, id := range ids {
		if id == monthID {
			return
		}
	}
	m.selected = ids[0] + "-01"
}

type errMsg struct{ err error }
type datasetChangedMsg struct{}
type reloadedMsg struct{ svc *app.Service }

// Init starts the dataset watch when one is configured.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return datasetChangedMsg{}
	}
}

func (m *Model) reload() tea.Cmd {
	path := m.dataPath
	filters := m.svc.Filters()
	return func() tea.Msg {
		svc, err := app.Load(context.Background(), path)
		if err != nil {
			return errMsg{err}
		}
		svc.SetFilters(filters)
		return reloadedMsg{svc: svc}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case datasetChangedMsg:
		if m.dataPath != "" {
			cmds = append(cmds, m.reload())
		}
		cmds = append(cmds, m.waitForChange())
	case reloadedMsg:
		m.svc = msg.svc
		m.eventIndex = 0
		m.clampToHorizon()
		m.status = "Reloaded from disk"
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp, modeAgenda:
			switch msg.String() {
			case "q", "esc", "?", "w":
				m.mode = modeNormal
			}
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.submitInput(&cmds)
			case "esc":
				m.mode = modeNormal
				m.editing = ""
				m.input.Reset()
				m.input.Blur()
				m.status = "Cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "left":
				m.moveDay(-1)
			case "right":
				m.moveDay(1)
			case "up":
				m.moveDay(-7)
			case "down":
				m.moveDay(7)
			case "[":
				m.moveMonth(-1)
			case "]":
				m.moveMonth(1)
			case "t":
				m.selected = datekey.Today()
				m.eventIndex = 0
			case "j":
				m.moveEvent(1)
			case "k":
				m.moveEvent(-1)
			case "f":
				m.cycleCategory()
			case "p":
				m.togglePriority()
			case "a":
				m.enterAdd(&cmds)
			case "i":
				m.enterEdit(&cmds)
			case "d":
				m.deleteSelected()
			case "w":
				m.mode = modeAgenda
			case "r":
				if m.dataPath != "" {
					cmds = append(cmds, m.reload())
				}
			case "?":
				m.mode = modeHelp
			case "q", "esc", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) moveDay(days int) {
	key, err := datekey.AddDays(m.selected, days)
	if err != nil {
		return
	}
	m.selected = key
	m.eventIndex = 0
}

func (m *Model) moveMonth(months int) {
	t, err := datekey.ParseLocalNoon(m.selected)
	if err != nil {
		return
	}
	first := time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, time.Local)
	m.selected = datekey.Key(first.AddDate(0, months, 0))
	m.eventIndex = 0
}

func (m *Model) moveEvent(delta int) {
	events := m.dayEvents()
	if len(events) == 0 {
		m.eventIndex = 0
		return
	}
	m.eventIndex = (m.eventIndex + delta + len(events)) % len(events)
}

func (m *Model) cycleCategory() {
	m.catIndex = (m.catIndex + 1) % len(m.categories)
	m.applyFilters()
	m.status = "Category: " + m.categories[m.catIndex]
}

func (m *Model) togglePriority() {
	m.priority = !m.priority
	m.applyFilters()
	if m.priority {
		m.status = "Showing high priority only"
	} else {
		m.status = "Showing all priorities"
	}
}

func (m *Model) applyFilters() {
	m.svc.SetFilters(viewmodel.Filters{
		Category:     m.categories[m.catIndex],
		PriorityOnly: m.priority,
	})
	m.eventIndex = 0
}

func (m *Model) enterAdd(cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.editing = ""
	m.input.Placeholder = "Title #category @time !high"
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "Add on " + m.selected
}

func (m *Model) enterEdit(cmds *[]tea.Cmd) {
	e := m.currentEvent()
	if e == nil {
		return
	}
	m.mode = modeInsert
	m.editing = e.ID
	m.input.Placeholder = "Title #category @time !high"
	m.input.SetValue(e.Title)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "Edit " + e.Title
}

func (m *Model) submitInput(cmds *[]tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	m.mode = modeNormal
	m.input.Reset()
	m.input.Blur()
	if raw == "" {
		m.editing = ""
		m.status = "Cancelled"
		return
	}

	title, category, timeLabel, high := parseTokens(raw)
	if m.editing != "" {
		patch := event.Patch{Title: &title}
		if category != "" {
			patch.Category = &category
		}
		if timeLabel != "" {
			patch.Time = &timeLabel
		}
		if high {
			p := event.PriorityHigh
			patch.Priority = &p
		}
		if _, err := m.svc.UpdateEvent(m.editing, patch); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		} else {
			m.status = "Updated"
		}
		m.editing = ""
		return
	}

	e := &event.Event{Date: m.selected, Title: title, Category: category, Time: timeLabel}
	if high {
		e.Priority = event.PriorityHigh
	}
	placement, err := m.svc.AddEvent(e)
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	if placement.Orphaned {
		m.status = "Added outside loaded months, kept in " + placement.MonthID
	} else {
		m.status = "Added"
	}
}

func (m *Model) deleteSelected() {
	e := m.currentEvent()
	if e == nil {
		return
	}
	if m.svc.RemoveEvent(e.ID) {
		m.status = "Removed " + e.Title
	}
	m.eventIndex = 0
}

// parseTokens splits an input line into title and #category/@time/!high
// tokens, in any order.
func parseTokens(raw string) (title, category, timeLabel string, high bool) {
	var titleWords []string
	for _, word := range strings.Fields(raw) {
		switch {
		case strings.HasPrefix(word, "#") && len(word) > 1:
			category = strings.ToLower(word[1:])
		case strings.HasPrefix(word, "@") && len(word) > 1:
			timeLabel = word[1:]
		case word == "!high" || word == "!":
			high = true
		default:
			titleWords = append(titleWords, word)
		}
	}
	title = strings.Join(titleWords, " ")
	return
}

func (m *Model) dayEvents() []*event.Event {
	return m.svc.Filters().Apply(m.svc.EventsOn(m.selected))
}

func (m *Model) currentEvent() *event.Event {
	events := m.dayEvents()
	if len(events) == 0 {
		return nil
	}
	if m.eventIndex >= len(events) {
		m.eventIndex = len(events) - 1
	}
	return events[m.eventIndex]
}

// View renders the month, the selected day's detail, and the status line.
func (m Model) View() string {
	switch m.mode {
	case modeAgenda:
		return m.agendaView()
	case modeHelp:
		help := lipgloss.NewStyle().Italic(true).Render(normalHelp)
		return "Help\n\n" + help + "\n\npress ? or esc to close"
	}

	body := m.monthView() + "\n\n" + m.detailView()
	if m.mode == modeInsert {
		body += "\n\n> " + m.input.View()
	}
	body += "\n\n" + m.statusView()
	return body
}

func (m Model) monthView() string {
	monthID := datekey.MonthID(m.selected)
	grid, err := m.svc.GridForMonth(monthID)
	if err != nil {
		return "(" + err.Error() + ")"
	}

	title := lipgloss.NewStyle().Bold(true).Render(grid.Name)
	if n := m.svc.UnresolvedConflictCount(); n > 0 {
		warn := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		title += warn.Render(fmt.Sprintf("  ⚠ %d", n))
	}

	days := make([]calendar.Day, 0, len(grid.Cells))
	for _, cell := range grid.Cells {
		if cell.Blank() {
			continue
		}
		days = append(days, calendar.Day{
			Day:        cell.Day,
			HasEvents:  len(cell.Events) > 0,
			IsToday:    cell.IsToday,
			IsSelected: cell.Key == m.selected,
			Accent:     cell.Accent != "",
			Overflow:   cell.MoreCount > 0,
		})
	}

	t, err := datekey.ParseLocalNoon(m.selected)
	if err != nil {
		return title
	}
	rendered := calendar.Render(t, days, calendar.Options{
		ShowHeader:    true,
		HeaderStyle:   lipgloss.NewStyle().Faint(true),
		EmptyStyle:    lipgloss.NewStyle().Faint(true),
		EventStyle:    lipgloss.NewStyle().Bold(true),
		AccentStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		TodayStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
	})
	return title + "\n" + rendered
}

func (m Model) detailView() string {
	header := lipgloss.NewStyle().Underline(true).Render(m.selected)
	events := m.dayEvents()
	if len(events) == 0 {
		faint := lipgloss.NewStyle().Faint(true)
		return header + "\n" + faint.Render("  nothing planned (a to add)")
	}

	registry := m.svc.Document().Categories
	var b strings.Builder
	b.WriteString(header)
	for i, e := range events {
		cursor := "  "
		if i == m.eventIndex {
			cursor = "» "
		}
		line := cursor + e.Title
		if e.Time != "" {
			line += " (" + e.Time + ")"
		}
		if icon := registry.Lookup(e.Category).Icon; icon != "" {
			line += " " + icon
		}
		if e.HighPriority() {
			line += " !"
		}
		b.WriteString("\n" + line)
	}
	return b.String()
}

func (m Model) agendaView() string {
	week, err := m.svc.AgendaForWeek(m.selected)
	if err != nil {
		return "(" + err.Error() + ")"
	}

	title := lipgloss.NewStyle().Bold(true).Render("Week of " + week.Start)
	slotStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(title)
	for i := range week.Days {
		d := &week.Days[i]
		day := d.Weekday + " " + d.Key
		if d.Key == m.selected {
			day = lipgloss.NewStyle().Reverse(true).Render(day)
		}
		b.WriteString("\n\n" + day)
		for _, s := range datekey.Slots() {
			for _, item := range d.Slot(s) {
				prefix := "  • "
				if item.Kind == viewmodel.KindRoutine {
					prefix = "  ~ "
				}
				line := prefix + item.Title
				if item.Time != "" && item.Kind == viewmodel.KindEvent {
					line += " (" + item.Time + ")"
				}
				b.WriteString("\n" + line)
			}
		}
		if d.Meal != nil {
			b.WriteString("\n" + slotStyle.Render("  dinner: "+d.Meal.Text))
		}
	}
	b.WriteString("\n\npress w or esc to close")
	return b.String()
}

func (m Model) statusView() string {
	filters := m.svc.Filters()
	tags := []string{"filter: " + filters.Category}
	if filters.PriorityOnly {
		tags = append(tags, "high priority")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return style.Render(fmt.Sprintf("[%s] %s", strings.Join(tags, ", "), m.status))
}
