package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ronin/internal/store"
	"ronin/internal/tracker"
)

// Dashboard bundles the components the board renders and mutates. All store
// operations are synchronous, so the model reloads its snapshot after every
// action instead of juggling async commands.
type Dashboard struct {
	Store    *store.Store
	LogPose  *tracker.LogPoseTracker
	Treasury *tracker.Treasury
	Authed   bool
}

type panel int

const (
	panelQuests panel = iota
	panelHabits
	panelShelf
	panelTreasury
	panelCount
)

var panelNames = [panelCount]string{"Quests", "Habits", "Shelf", "Treasury"}

type boardModel struct {
	dash Dashboard

	width  int
	height int

	doc      store.Document
	pose     tracker.LogPose
	treasure []tracker.TreasuryItem

	active   panel
	selected int

	lastLog string
}

func newBoardModel(dash Dashboard) boardModel {
	m := boardModel{dash: dash, lastLog: "Loaded."}
	m.refresh()
	return m
}

func (m *boardModel) refresh() {
	m.doc = m.dash.Store.Document()
	m.pose = m.dash.LogPose.Get()
	m.treasure = m.dash.Treasury.Items()
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) rowCount() int {
	switch m.active {
	case panelQuests:
		return len(m.doc.Quests)
	case panelHabits:
		return len(m.doc.Habits)
	case panelShelf:
		return len(m.doc.LibraryItems)
	case panelTreasury:
		return len(m.treasure)
	}
	return 0
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.refresh()
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, nil
		case "tab", "l", "right":
			m.active = (m.active + 1) % panelCount
			m.selected = 0
			return m, nil
		case "shift+tab", "h", "left":
			m.active = (m.active + panelCount - 1) % panelCount
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ", "c":
			return m.act(), nil
		}
	}
	return m, nil
}

// act applies the panel's primary action to the selected row: toggle a
// quest, toggle today's habit day, or cycle a shelf item. The treasury is
// read-only here; coins move through the CLI.
func (m boardModel) act() boardModel {
	if m.selected < 0 || m.selected >= m.rowCount() {
		return m
	}
	switch m.active {
	case panelQuests:
		q := m.doc.Quests[m.selected]
		m.dash.Store.ToggleQuestComplete(q.ID)
		m.lastLog = "Toggled quest: " + q.Title
	case panelHabits:
		h := m.doc.Habits[m.selected]
		today := time.Now().Format("2006-01-02")
		m.dash.Store.ToggleHabitDay(h.ID, today)
		m.lastLog = fmt.Sprintf("Toggled %s for %s", h.Name, today)
	case panelShelf:
		if !m.dash.Authed {
			m.lastLog = "The gate is closed — shelf statuses are read-only."
			return m
		}
		item := m.doc.LibraryItems[m.selected]
		next := store.NextStatus(item.Type, item.Status)
		m.dash.Store.UpdateLibraryItem(item.ID, store.LibraryPatch{Status: &next})
		m.lastLog = fmt.Sprintf("%s → %s", item.Title, next)
	case panelTreasury:
		m.lastLog = "Use 'ronin treasury save' to move coins."
		return m
	}
	m.refresh()
	return m
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderPanel()
	footer := "\n" + m.lastLog

	leftW := 24
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 16 {
			leftW = 16
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	var tabs []string
	for i, name := range panelNames {
		if panel(i) == m.active {
			tabs = append(tabs, "["+name+"]")
		} else {
			tabs = append(tabs, " "+name+" ")
		}
	}
	gate := "gate closed"
	if m.dash.Authed {
		gate = "gate open"
	}
	return fmt.Sprintf("Ronin Dojo | %s | %s", strings.Join(tabs, " "), gate)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Log Pose"}
	lines = append(lines, fmt.Sprintf("- %s", m.pose.Series))
	lines = append(lines, fmt.Sprintf("  ep %d / ch %d", m.pose.Episode, m.pose.Chapter))
	lines = append(lines, "")
	lines = append(lines, "Treasury")
	if len(m.treasure) == 0 {
		lines = append(lines, "- (empty)")
	}
	for _, item := range m.treasure {
		lines = append(lines, fmt.Sprintf("- %s", item.Name))
		lines = append(lines, "  "+progressBar(item.Saved, item.Cost, 12))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- tab/h/l: switch panel")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderPanel() string {
	var out []string
	out = append(out, panelNames[m.active])

	rows := m.panelRows()
	if len(rows) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, cursor+row)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) panelRows() []string {
	var rows []string
	switch m.active {
	case panelQuests:
		for _, q := range m.doc.Quests {
			mark := "[ ]"
			if q.Completed {
				mark = "[x]"
			}
			rows = append(rows, fmt.Sprintf("%s %s (%s)", mark, q.Title, q.Category))
		}
	case panelHabits:
		today := time.Now().Format("2006-01-02")
		for _, h := range m.doc.Habits {
			mark := "○"
			for _, d := range h.CompletedDays {
				if d == today {
					mark = "●"
					break
				}
			}
			rows = append(rows, fmt.Sprintf("%s %s (%d days)", mark, h.Name, len(h.CompletedDays)))
		}
	case panelShelf:
		for _, item := range m.doc.LibraryItems {
			rows = append(rows, fmt.Sprintf("%s — %s (%s)", item.Title, item.Status, item.Type))
		}
	case panelTreasury:
		for _, item := range m.treasure {
			rows = append(rows, fmt.Sprintf("%s %s %d/%d", item.Name, progressBar(item.Saved, item.Cost, 16), item.Saved, item.Cost))
		}
	}
	return rows
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
