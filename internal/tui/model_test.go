package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ronin/internal/store"
	"ronin/internal/tracker"
	"ronin/internal/vault"
)

func newTestModel(t *testing.T, authed bool) boardModel {
	t.Helper()
	v := vault.Open(filepath.Join(t.TempDir(), "vault.db"), zap.NewNop())
	t.Cleanup(func() { _ = v.Close() })
	return newBoardModel(Dashboard{
		Store:    store.New(v),
		LogPose:  tracker.NewLogPose(v),
		Treasury: tracker.NewTreasury(v),
		Authed:   authed,
	})
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabCyclesPanels(t *testing.T) {
	m := newTestModel(t, false)

	if m.active != panelQuests {
		t.Fatalf("initial panel = %v, want quests", m.active)
	}
	next, _ := m.Update(key("l"))
	m = next.(boardModel)
	if m.active != panelHabits {
		t.Fatalf("panel after l = %v, want habits", m.active)
	}
	prev, _ := m.Update(key("h"))
	m = prev.(boardModel)
	if m.active != panelQuests {
		t.Fatalf("panel after h = %v, want quests", m.active)
	}
}

func TestToggleQuestFromBoard(t *testing.T) {
	m := newTestModel(t, false)
	q := m.dash.Store.AddQuest(store.QuestInput{Title: "train", Category: store.QuestFitness})
	m.refresh()

	next, _ := m.Update(key(" "))
	m = next.(boardModel)
	if !m.doc.Quests[0].Completed {
		t.Fatalf("quest %s not completed after toggle", q.ID)
	}
}

func TestHabitToggleUsesToday(t *testing.T) {
	m := newTestModel(t, false)
	m.dash.Store.AddHabit("meditate")
	m.refresh()
	m.active = panelHabits

	next, _ := m.Update(key(" "))
	m = next.(boardModel)
	today := time.Now().Format("2006-01-02")
	days := m.doc.Habits[0].CompletedDays
	if len(days) != 1 || days[0] != today {
		t.Fatalf("completed days = %v, want [%s]", days, today)
	}
}

func TestShelfCycleRequiresOpenGate(t *testing.T) {
	m := newTestModel(t, false)
	m.dash.Store.AddLibraryItem(store.LibraryInput{Title: "Vagabond", Type: store.ItemBook, Status: store.StatusToRead})
	m.refresh()
	m.active = panelShelf

	next, _ := m.Update(key(" "))
	m = next.(boardModel)
	if got := m.doc.LibraryItems[0].Status; got != store.StatusToRead {
		t.Fatalf("closed gate still cycled status to %s", got)
	}

	m.dash.Authed = true
	next, _ = m.Update(key(" "))
	m = next.(boardModel)
	if got := m.doc.LibraryItems[0].Status; got != store.StatusReading {
		t.Fatalf("status = %s, want reading", got)
	}
}

func TestViewRendersWithoutData(t *testing.T) {
	m := newTestModel(t, false)
	out := m.View()
	if !strings.Contains(out, "Ronin Dojo") {
		t.Fatalf("view missing header:\n%s", out)
	}
	if !strings.Contains(out, "(empty)") {
		t.Fatalf("view missing empty panel marker:\n%s", out)
	}
}
