package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ronin theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBlade    = "⚔️"
	IconScroll   = "📜"
	IconQuest    = "🗺️"
	IconDone     = "✅"
	IconHabit    = "🌱"
	IconBook     = "📖"
	IconFilm     = "🎬"
	IconCompass  = "🧭"
	IconCoins    = "💰"
	IconMemory   = "🖼️"
	IconLock     = "🔒"
	IconUnlocked = "🔓"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cInk   = lipgloss.Color("240") // sumi ink gray
	cCrim  = lipgloss.Color("160") // crimson
	cGood  = lipgloss.Color("42")  // green
	cWarn  = lipgloss.Color("214") // orange
	cBad   = lipgloss.Color("196") // red
	cMuted = lipgloss.Color("244") // gray
	cGold  = lipgloss.Color("220") // gold
	cOcean = lipgloss.Color("39")  // ocean blue
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cCrim)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cOcean)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cOcean)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cInk).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cOcean)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cInk)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StatusText colors a library/quest status the way the dashboard badges did.
func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "finished", "done":
		return Good.Render(status)
	case "reading", "watching":
		return H2.Render(status)
	case "to-read", "to-watch", "pending":
		return Warn.Render(status)
	default:
		return Muted.Render(status)
	}
}

// QuestMark renders the completion checkbox for quest lists.
func QuestMark(completed bool) string {
	if completed {
		return Good.Render("[x]")
	}
	return Warn.Render("[ ]")
}

// TypeIcon picks the shelf icon for a library item type.
func TypeIcon(itemType string) string {
	if itemType == "movie" {
		return IconFilm
	}
	return IconBook
}

// GateBadge renders the session state for status output.
func GateBadge(authed bool) string {
	if authed {
		return Good.Render(IconUnlocked + " ronin")
	}
	return Muted.Render(IconLock + " wanderer")
}
