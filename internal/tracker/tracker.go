// Package tracker covers the small standalone dashboard widgets: the log
// pose (series progress compass), the treasury (savings goals) and the
// memory card. Each one binds its own vault slot and follows the same
// whole-value-rewrite contract as the aggregate document, just with a much
// smaller value.
package tracker

import (
	"github.com/google/uuid"

	"ronin/internal/vault"
)

const (
	LogPoseKey  = "ronin_log_pose"
	TreasuryKey = "ronin_treasury"
	MemoryKey   = "ronin_memory"
)

type MediaType string

const (
	MediaAnime MediaType = "anime"
	MediaManga MediaType = "manga"
)

// LogPose tracks where the ronin is in one long-running series.
type LogPose struct {
	Series  string    `json:"series"`
	Episode int       `json:"episode"`
	Chapter int       `json:"chapter"`
	Type    MediaType `json:"type"`
}

// DefaultLogPose matches the seed values the site shipped with.
func DefaultLogPose() LogPose {
	return LogPose{Series: "One Piece", Episode: 1089, Chapter: 1105, Type: MediaManga}
}

// TreasuryItem is one savings goal.
type TreasuryItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cost  int    `json:"cost"`
	Saved int    `json:"saved"`
}

// Memory is the single photo+caption card.
type Memory struct {
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

type LogPoseTracker struct {
	slot *vault.Slot[LogPose]
}

func NewLogPose(v *vault.Vault) *LogPoseTracker {
	return &LogPoseTracker{slot: vault.NewSlot[LogPose](v, LogPoseKey)}
}

func (t *LogPoseTracker) Get() LogPose {
	return t.slot.Read(DefaultLogPose())
}

// AdjustEpisode moves the episode counter by delta, clamped at 0. This is
// the widget that clamps; the aggregate document's counters do not.
func (t *LogPoseTracker) AdjustEpisode(delta int) LogPose {
	return t.adjust(func(p *LogPose) { p.Episode = clampZero(p.Episode + delta) })
}

// AdjustChapter moves the chapter counter by delta, clamped at 0.
func (t *LogPoseTracker) AdjustChapter(delta int) LogPose {
	return t.adjust(func(p *LogPose) { p.Chapter = clampZero(p.Chapter + delta) })
}

// SetSeries renames the tracked series.
func (t *LogPoseTracker) SetSeries(series string, media MediaType) LogPose {
	return t.adjust(func(p *LogPose) {
		p.Series = series
		if media != "" {
			p.Type = media
		}
	})
}

func (t *LogPoseTracker) adjust(fn func(*LogPose)) LogPose {
	cur := t.Get()
	fn(&cur)
	t.slot.Write(cur)
	return cur
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

type Treasury struct {
	slot  *vault.Slot[[]TreasuryItem]
	newID func() string
}

func NewTreasury(v *vault.Vault) *Treasury {
	return &Treasury{
		slot:  vault.NewSlot[[]TreasuryItem](v, TreasuryKey),
		newID: uuid.NewString,
	}
}

func (t *Treasury) Items() []TreasuryItem {
	return t.slot.Read([]TreasuryItem{})
}

func (t *Treasury) Add(name string, cost int) TreasuryItem {
	item := TreasuryItem{ID: t.newID(), Name: name, Cost: clampZero(cost)}
	t.slot.Update(func(items []TreasuryItem) []TreasuryItem {
		return append(items, item)
	})
	return item
}

// Save moves a goal's saved amount by delta, clamped into [0, Cost].
// Unknown ids are a no-op, same policy as the aggregate store.
func (t *Treasury) Save(id string, delta int) {
	t.slot.Update(func(items []TreasuryItem) []TreasuryItem {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			saved := items[i].Saved + delta
			if saved < 0 {
				saved = 0
			}
			if saved > items[i].Cost {
				saved = items[i].Cost
			}
			items[i].Saved = saved
		}
		return items
	})
}

func (t *Treasury) Delete(id string) {
	t.slot.Update(func(items []TreasuryItem) []TreasuryItem {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...)
			}
		}
		return items
	})
}

type MemoryCard struct {
	slot *vault.Slot[Memory]
}

func NewMemory(v *vault.Vault) *MemoryCard {
	return &MemoryCard{slot: vault.NewSlot[Memory](v, MemoryKey)}
}

func (m *MemoryCard) Get() Memory { return m.slot.Read(Memory{}) }

func (m *MemoryCard) Set(img, caption string) {
	m.slot.Write(Memory{Image: img, Caption: caption})
}

func (m *MemoryCard) Clear() { m.slot.Clear() }
