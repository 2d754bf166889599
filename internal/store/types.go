package store

// Entity shapes for the aggregate document. Field names follow the JSON the
// original site left behind in localStorage, so an exported blob loads as-is.

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHub      string   `json:"github,omitempty"`
	Live        string   `json:"live,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

type QuestCategory string

const (
	QuestGaming   QuestCategory = "gaming"
	QuestLearning QuestCategory = "learning"
	QuestFitness  QuestCategory = "fitness"
	QuestCreative QuestCategory = "creative"
)

func (c QuestCategory) IsValid() bool {
	switch c {
	case QuestGaming, QuestLearning, QuestFitness, QuestCreative:
		return true
	default:
		return false
	}
}

type Quest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Completed   bool          `json:"completed"`
	Category    QuestCategory `json:"category"`
	CreatedAt   string        `json:"createdAt"`
}

type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// CompletedDays holds ISO dates (YYYY-MM-DD); presence of a date means
	// the habit was done that day. Never contains duplicates.
	CompletedDays []string `json:"completedDays"`
}

type ItemType string

const (
	ItemBook  ItemType = "book"
	ItemMovie ItemType = "movie"
)

type ItemStatus string

const (
	StatusToRead   ItemStatus = "to-read"
	StatusReading  ItemStatus = "reading"
	StatusToWatch  ItemStatus = "to-watch"
	StatusWatching ItemStatus = "watching"
	StatusFinished ItemStatus = "finished"
)

type LibraryItem struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Type     ItemType   `json:"type"`
	Status   ItemStatus `json:"status"`
	CoverURL string     `json:"coverUrl,omitempty"`
}

// StatusCycle returns the fixed status sequence for an item type, the one
// the site's shelf widget cycled through on click. The store itself never
// validates an item's status against its type; that check lives with the
// caller, same as it did in the original UI.
func StatusCycle(t ItemType) []ItemStatus {
	if t == ItemMovie {
		return []ItemStatus{StatusToWatch, StatusWatching, StatusFinished}
	}
	return []ItemStatus{StatusToRead, StatusReading, StatusFinished}
}

// NextStatus advances cur one step along the cycle for t, wrapping at the
// end. An unknown status restarts the cycle.
func NextStatus(t ItemType, cur ItemStatus) ItemStatus {
	cycle := StatusCycle(t)
	for i, s := range cycle {
		if s == cur {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// SchemaVersion is stamped into every persisted document. Loading merges
// older (smaller) documents over the defaults field-by-field, so a blob
// written before a field existed simply keeps that field's default.
const SchemaVersion = 1

// Document is the aggregate persisted as one JSON blob under the dataStore
// key. Every mutation rewrites the whole document.
type Document struct {
	SchemaVersion   int           `json:"schemaVersion"`
	Projects        []Project     `json:"projects"`
	Quests          []Quest       `json:"quests"`
	Habits          []Habit       `json:"habits"`
	LibraryItems    []LibraryItem `json:"libraryItems"`
	OnePieceEpisode int           `json:"onePieceEpisode"`
	OnePieceChapter int           `json:"onePieceChapter"`
	IsAdmin         bool          `json:"isAdmin"`
}

// DefaultDocument returns the document used before anything was persisted:
// empty lists, both counters at 1, admin off.
func DefaultDocument() Document {
	return Document{
		SchemaVersion:   SchemaVersion,
		Projects:        []Project{},
		Quests:          []Quest{},
		Habits:          []Habit{},
		LibraryItems:    []LibraryItem{},
		OnePieceEpisode: 1,
		OnePieceChapter: 1,
	}
}
