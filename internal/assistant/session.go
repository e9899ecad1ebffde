package assistant

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role is a conversation participant.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// greetingText seeds every fresh conversation.
const greetingText = "Bună! 👋 Sunt WeatherBot, asistentul tău meteo personalizat! Cu ce te pot ajuta ?"

// ChatMessage is one conversation turn. IDs are timestamp-derived and
// strictly increasing within a manager.
type ChatMessage struct {
	ID             int64           `json:"id"`
	Role           Role            `json:"role"`
	Content        string          `json:"content"`
	Time           string          `json:"time"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	AdditionalTips []Tip           `json:"additional_tips,omitempty"`
	Confidence     json.RawMessage `json:"confidence,omitempty"`
}

// Session is an append-only conversation bound to one weather snapshot. When
// the snapshot changes the conversation resets to the single greeting.
type Session struct {
	ID         string        `json:"session_id"`
	SnapshotID string        `json:"snapshot_id"`
	Messages   []ChatMessage `json:"messages"`

	touchedAt time.Time
}

// SessionManager owns the conversations and the message-id sequence. Idle
// conversations are dropped after ttl; a ttl of zero disables eviction.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	lastID   int64
}

// NewSessionManager creates an empty manager whose idle sessions expire after
// ttl.
func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Session returns the conversation for id, creating one when id is empty or
// unknown. A snapshot mismatch resets the conversation to the greeting and
// rebinds it; stale replies from a previous snapshot can therefore never
// extend the new conversation.
func (m *SessionManager) Session(id, snapshotID string, loc *time.Location) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictIdleLocked()

	sess, ok := m.sessions[id]
	if !ok {
		sess = &Session{ID: uuid.NewString()}
		m.sessions[sess.ID] = sess
	}
	sess.touchedAt = m.now()
	if sess.SnapshotID != snapshotID {
		sess.SnapshotID = snapshotID
		sess.Messages = []ChatMessage{m.newMessageLocked(RoleSystem, greetingText, loc)}
	}
	return sess
}

// evictIdleLocked sweeps conversations whose last activity is older than the
// TTL, so abandoned sessions do not accumulate for the life of the process.
func (m *SessionManager) evictIdleLocked() {
	if m.ttl <= 0 {
		return
	}
	cutoff := m.now().Add(-m.ttl)
	for id, sess := range m.sessions {
		if sess.touchedAt.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// NewMessage builds a message with a fresh monotonic id and a localized
// time-of-day string.
func (m *SessionManager) NewMessage(role Role, content string, loc *time.Location) ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.newMessageLocked(role, content, loc)
}

// Append adds a message to the session and marks it active.
func (m *SessionManager) Append(sess *Session, msg ChatMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess.Messages = append(sess.Messages, msg)
	sess.touchedAt = m.now()
}

func (m *SessionManager) newMessageLocked(role Role, content string, loc *time.Location) ChatMessage {
	if loc == nil {
		loc = time.UTC
	}
	now := m.now()

	id := now.UnixMilli()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	m.lastID = id

	return ChatMessage{
		ID:      id,
		Role:    role,
		Content: content,
		Time:    now.In(loc).Format("15:04"),
	}
}
