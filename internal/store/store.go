package store

import (
	"time"

	"github.com/google/uuid"

	"ronin/internal/vault"
)

// Key is the vault key the aggregate document lives under. The name is kept
// from the original site so an exported localStorage blob imports cleanly.
const Key = "dataStore"

// UpdateResult names the outcome of an update/delete. A missing id is a
// deliberate no-op, never an error — the original silently skipped unknown
// ids and callers grew to rely on that, so the policy is kept but made
// visible in the signature.
type UpdateResult int

const (
	Updated UpdateResult = iota
	NotFound
)

// Store owns one aggregate Document and persists the whole document through
// its vault slot on every mutation. All operations are synchronous; the one
// load happens at construction. Two stores on the same vault key (including
// two processes on the same vault file) do not see each other's writes —
// last writer wins, same as two browser tabs did.
type Store struct {
	slot *vault.Slot[Document]
	doc  Document

	now   func() time.Time
	newID func() string
}

// New loads the persisted document, merging any partial blob from an older
// schema over the defaults, and returns a store bound to it.
func New(v *vault.Vault) *Store {
	s := &Store{
		slot:  vault.NewSlot[Document](v, Key),
		now:   time.Now,
		newID: uuid.NewString,
	}
	s.doc = normalize(s.slot.Read(DefaultDocument()))
	return s
}

// normalize is the schema migration step: nil lists from hand-edited or
// pre-list blobs become empty, and the current version is stamped.
func normalize(doc Document) Document {
	if doc.Projects == nil {
		doc.Projects = []Project{}
	}
	if doc.Quests == nil {
		doc.Quests = []Quest{}
	}
	if doc.Habits == nil {
		doc.Habits = []Habit{}
	}
	if doc.LibraryItems == nil {
		doc.LibraryItems = []LibraryItem{}
	}
	doc.SchemaVersion = SchemaVersion
	return doc
}

func (s *Store) persist() {
	s.slot.Write(s.doc)
}

// Document returns a snapshot copy of the aggregate document.
func (s *Store) Document() Document {
	doc := s.doc
	doc.Projects = append([]Project{}, s.doc.Projects...)
	doc.Quests = append([]Quest{}, s.doc.Quests...)
	doc.Habits = append([]Habit{}, s.doc.Habits...)
	doc.LibraryItems = append([]LibraryItem{}, s.doc.LibraryItems...)
	return doc
}

func (s *Store) Projects() []Project         { return append([]Project{}, s.doc.Projects...) }
func (s *Store) Quests() []Quest             { return append([]Quest{}, s.doc.Quests...) }
func (s *Store) Habits() []Habit             { return append([]Habit{}, s.doc.Habits...) }
func (s *Store) LibraryItems() []LibraryItem { return append([]LibraryItem{}, s.doc.LibraryItems...) }
func (s *Store) OnePieceEpisode() int        { return s.doc.OnePieceEpisode }
func (s *Store) OnePieceChapter() int        { return s.doc.OnePieceChapter }
func (s *Store) IsAdmin() bool               { return s.doc.IsAdmin }

// ProjectInput carries the caller-settable fields of a project.
type ProjectInput struct {
	Title       string
	Description string
	Tech        []string
	GitHub      string
	Live        string
	ImageURL    string
}

func (s *Store) AddProject(in ProjectInput) Project {
	p := Project{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Tech:        in.Tech,
		GitHub:      in.GitHub,
		Live:        in.Live,
		ImageURL:    in.ImageURL,
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
	s.doc.Projects = append(s.doc.Projects, p)
	s.persist()
	return p
}

// ProjectPatch holds optional field updates; nil means leave unchanged.
type ProjectPatch struct {
	Title       *string
	Description *string
	Tech        []string
	GitHub      *string
	Live        *string
	ImageURL    *string
}

func (s *Store) UpdateProject(id string, patch ProjectPatch) UpdateResult {
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID != id {
			continue
		}
		p := &s.doc.Projects[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Tech != nil {
			p.Tech = patch.Tech
		}
		if patch.GitHub != nil {
			p.GitHub = *patch.GitHub
		}
		if patch.Live != nil {
			p.Live = *patch.Live
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		s.persist()
		return Updated
	}
	return NotFound
}

func (s *Store) DeleteProject(id string) UpdateResult {
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID == id {
			s.doc.Projects = append(s.doc.Projects[:i], s.doc.Projects[i+1:]...)
			s.persist()
			return Updated
		}
	}
	return NotFound
}

// QuestInput carries the caller-settable fields of a quest.
type QuestInput struct {
	Title       string
	Description string
	Category    QuestCategory
}

func (s *Store) AddQuest(in QuestInput) Quest {
	q := Quest{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}
	s.doc.Quests = append(s.doc.Quests, q)
	s.persist()
	return q
}

type QuestPatch struct {
	Title       *string
	Description *string
	Category    *QuestCategory
	Completed   *bool
}

func (s *Store) UpdateQuest(id string, patch QuestPatch) UpdateResult {
	for i := range s.doc.Quests {
		if s.doc.Quests[i].ID != id {
			continue
		}
		q := &s.doc.Quests[i]
		if patch.Title != nil {
			q.Title = *patch.Title
		}
		if patch.Description != nil {
			q.Description = *patch.Description
		}
		if patch.Category != nil {
			q.Category = *patch.Category
		}
		if patch.Completed != nil {
			q.Completed = *patch.Completed
		}
		s.persist()
		return Updated
	}
	return NotFound
}

// ToggleQuestComplete flips the completed flag of one quest.
func (s *Store) ToggleQuestComplete(id string) UpdateResult {
	for i := range s.doc.Quests {
		if s.doc.Quests[i].ID == id {
			s.doc.Quests[i].Completed = !s.doc.Quests[i].Completed
			s.persist()
			return Updated
		}
	}
	return NotFound
}

func (s *Store) DeleteQuest(id string) UpdateResult {
	for i := range s.doc.Quests {
		if s.doc.Quests[i].ID == id {
			s.doc.Quests = append(s.doc.Quests[:i], s.doc.Quests[i+1:]...)
			s.persist()
			return Updated
		}
	}
	return NotFound
}

func (s *Store) AddHabit(name string) Habit {
	h := Habit{
		ID:            s.newID(),
		Name:          name,
		CompletedDays: []string{},
	}
	s.doc.Habits = append(s.doc.Habits, h)
	s.persist()
	return h
}

// ToggleHabitDay adds date (YYYY-MM-DD) to the habit's completed set, or
// removes it when already present. Applying it twice restores the set.
// No ordering is guaranteed.
func (s *Store) ToggleHabitDay(habitID, date string) UpdateResult {
	for i := range s.doc.Habits {
		if s.doc.Habits[i].ID != habitID {
			continue
		}
		h := &s.doc.Habits[i]
		for j, d := range h.CompletedDays {
			if d == date {
				h.CompletedDays = append(h.CompletedDays[:j], h.CompletedDays[j+1:]...)
				s.persist()
				return Updated
			}
		}
		h.CompletedDays = append(h.CompletedDays, date)
		s.persist()
		return Updated
	}
	return NotFound
}

func (s *Store) DeleteHabit(id string) UpdateResult {
	for i := range s.doc.Habits {
		if s.doc.Habits[i].ID == id {
			s.doc.Habits = append(s.doc.Habits[:i], s.doc.Habits[i+1:]...)
			s.persist()
			return Updated
		}
	}
	return NotFound
}

// LibraryInput carries the caller-settable fields of a library item.
type LibraryInput struct {
	Title    string
	Type     ItemType
	Status   ItemStatus
	CoverURL string
}

func (s *Store) AddLibraryItem(in LibraryInput) LibraryItem {
	item := LibraryItem{
		ID:       s.newID(),
		Title:    in.Title,
		Type:     in.Type,
		Status:   in.Status,
		CoverURL: in.CoverURL,
	}
	s.doc.LibraryItems = append(s.doc.LibraryItems, item)
	s.persist()
	return item
}

type LibraryPatch struct {
	Title    *string
	Status   *ItemStatus
	CoverURL *string
}

func (s *Store) UpdateLibraryItem(id string, patch LibraryPatch) UpdateResult {
	for i := range s.doc.LibraryItems {
		if s.doc.LibraryItems[i].ID != id {
			continue
		}
		item := &s.doc.LibraryItems[i]
		if patch.Title != nil {
			item.Title = *patch.Title
		}
		if patch.Status != nil {
			item.Status = *patch.Status
		}
		if patch.CoverURL != nil {
			item.CoverURL = *patch.CoverURL
		}
		s.persist()
		return Updated
	}
	return NotFound
}

func (s *Store) DeleteLibraryItem(id string) UpdateResult {
	for i := range s.doc.LibraryItems {
		if s.doc.LibraryItems[i].ID == id {
			s.doc.LibraryItems = append(s.doc.LibraryItems[:i], s.doc.LibraryItems[i+1:]...)
			s.persist()
			return Updated
		}
	}
	return NotFound
}

// SetEpisode sets the One Piece episode counter. A direct set: the store
// does not clamp, the CLI layer does before calling. The shelf widgets clamp
// and this one historically did not; that mismatch is kept as-is.
func (s *Store) SetEpisode(n int) {
	s.doc.OnePieceEpisode = n
	s.persist()
}

// SetChapter sets the One Piece chapter counter. Same clamping note as
// SetEpisode.
func (s *Store) SetChapter(n int) {
	s.doc.OnePieceChapter = n
	s.persist()
}

// ToggleAdmin flips the document's admin convenience flag. This is a UI
// toggle, independent of the session gate.
func (s *Store) ToggleAdmin() bool {
	s.doc.IsAdmin = !s.doc.IsAdmin
	s.persist()
	return s.doc.IsAdmin
}
