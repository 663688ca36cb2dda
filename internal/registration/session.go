package registration

import "sync"

// Step identifies the user's position in the registration conversation.
type Step string

const (
	StepIdle          Step = "idle"
	StepChooseCourse  Step = "choose_course"
	StepChooseLevel   Step = "choose_level"
	StepChooseSection Step = "choose_section"
	StepAskName       Step = "ask_name"
	StepAskAge        Step = "ask_age"
	StepAskPhone      Step = "ask_phone"
	StepReview        Step = "review"
	StepEditMenu      Step = "edit_menu"
)

// Session stores the transient registration progress for one user.
type Session struct {
	Step Step

	CourseKey   string
	CourseLabel string

	LevelKey   string
	LevelLabel string

	SectionKey   string
	SectionLabel string

	FullName string
	Age      int
	Phone    string

	// EditField records which field is being revised from the edit menu.
	EditField string
}

// ClearLevel drops the level selection.
func (s *Session) ClearLevel() {
	s.LevelKey, s.LevelLabel = "", ""
}

// ClearSection drops the section selection.
func (s *Session) ClearSection() {
	s.SectionKey, s.SectionLabel = "", ""
}

// Complete reports whether every field required for the active course shape
// is populated; a level is required only for has-level courses.
func (s *Session) Complete() bool {
	if s.CourseKey == "" || s.CourseLabel == "" || s.SectionLabel == "" ||
		s.FullName == "" || s.Age == 0 || s.Phone == "" {
		return false
	}
	if CourseHasLevel(s.CourseKey) && s.LevelLabel == "" {
		return false
	}
	return true
}

// Store keeps per-user sessions. Events for one user are expected to arrive
// sequentially; the last write to a session wins.
type Store interface {
	Get(userID int64) *Session
	Save(userID int64, sess *Session)
	Clear(userID int64)
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryStore constructs an in-process Store implementation.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[int64]*Session)}
}

// Get returns the stored session for a user, or a fresh idle session that is
// not yet persisted in the store.
func (m *memoryStore) Get(userID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[userID]; ok {
		return sess
	}
	return &Session{Step: StepIdle}
}

// Save stores the session for a user.
func (m *memoryStore) Save(userID int64, sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = sess
}

// Clear removes the entire session for a user.
func (m *memoryStore) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
