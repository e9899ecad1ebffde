package assistant

import (
	"testing"
	"time"
)

func TestSessionCreatesWithGreeting(t *testing.T) {
	m := NewSessionManager(time.Hour)

	sess := m.Session("", "snap-1", time.UTC)
	if sess.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if sess.SnapshotID != "snap-1" {
		t.Errorf("expected snapshot binding, got %q", sess.SnapshotID)
	}
	if len(sess.Messages) != 1 {
		t.Fatalf("expected the greeting only, got %d messages", len(sess.Messages))
	}
	if sess.Messages[0].Role != RoleSystem || sess.Messages[0].Content != greetingText {
		t.Errorf("unexpected greeting message %+v", sess.Messages[0])
	}
}

func TestSessionReturnsExisting(t *testing.T) {
	m := NewSessionManager(time.Hour)

	created := m.Session("", "snap-1", time.UTC)
	m.Append(created, m.NewMessage(RoleUser, "Ce vreme e afară?", time.UTC))

	again := m.Session(created.ID, "snap-1", time.UTC)
	if again != created {
		t.Fatal("expected the same session for a known id")
	}
	if len(again.Messages) != 2 {
		t.Errorf("expected history to survive, got %d messages", len(again.Messages))
	}
}

// TestSessionResetsOnSnapshotChange verifies that a snapshot mismatch wipes
// the conversation back to the greeting.
func TestSessionResetsOnSnapshotChange(t *testing.T) {
	m := NewSessionManager(time.Hour)

	sess := m.Session("", "snap-1", time.UTC)
	m.Append(sess, m.NewMessage(RoleUser, "Ce vreme e afară?", time.UTC))

	same := m.Session(sess.ID, "snap-2", time.UTC)
	if same != sess {
		t.Fatal("expected the session object to be rebound, not replaced")
	}
	if same.SnapshotID != "snap-2" {
		t.Errorf("expected rebinding to snap-2, got %q", same.SnapshotID)
	}
	if len(same.Messages) != 1 || same.Messages[0].Content != greetingText {
		t.Errorf("expected a reset to the greeting, got %+v", same.Messages)
	}
}

func TestSessionUnknownIDCreatesFresh(t *testing.T) {
	m := NewSessionManager(time.Hour)

	sess := m.Session("nonexistent", "snap-1", time.UTC)
	if sess.ID == "nonexistent" {
		t.Error("expected a fresh generated id for an unknown session")
	}
	if len(sess.Messages) != 1 {
		t.Errorf("expected the greeting only, got %d messages", len(sess.Messages))
	}
}

// TestSessionEviction verifies that conversations idle for longer than the
// TTL are dropped while active ones survive.
func TestSessionEviction(t *testing.T) {
	m := NewSessionManager(time.Hour)

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	idle := m.Session("", "snap-1", time.UTC)

	current = current.Add(30 * time.Minute)
	active := m.Session("", "snap-1", time.UTC)

	current = current.Add(45 * time.Minute)
	if got := m.Session(active.ID, "snap-1", time.UTC); got != active {
		t.Error("expected the recently active session to survive")
	}
	if got := m.Session(idle.ID, "snap-1", time.UTC); got == idle {
		t.Error("expected the idle session to be evicted and recreated")
	}
}

func TestSessionZeroTTLNeverEvicts(t *testing.T) {
	m := NewSessionManager(0)

	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	sess := m.Session("", "snap-1", time.UTC)
	current = current.Add(24 * time.Hour)

	if got := m.Session(sess.ID, "snap-1", time.UTC); got != sess {
		t.Error("expected zero TTL to disable eviction")
	}
}

// TestMessageIDsMonotonic verifies that ids stay strictly increasing even when
// the clock does not advance between messages.
func TestMessageIDsMonotonic(t *testing.T) {
	m := NewSessionManager(time.Hour)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	a := m.NewMessage(RoleUser, "unu", time.UTC)
	b := m.NewMessage(RoleAssistant, "doi", time.UTC)
	c := m.NewMessage(RoleUser, "trei", time.UTC)

	if a.ID != fixed.UnixMilli() {
		t.Errorf("expected the first id to be the timestamp, got %d", a.ID)
	}
	if b.ID <= a.ID || c.ID <= b.ID {
		t.Errorf("expected strictly increasing ids, got %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestMessageTimeLocalized(t *testing.T) {
	m := NewSessionManager(time.Hour)
	m.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	loc := time.FixedZone("EET", 2*3600)
	msg := m.NewMessage(RoleUser, "salut", loc)
	if msg.Time != "14:00" {
		t.Errorf("expected localized time 14:00, got %q", msg.Time)
	}

	msg = m.NewMessage(RoleUser, "salut", nil)
	if msg.Time != "12:00" {
		t.Errorf("expected UTC fallback 12:00, got %q", msg.Time)
	}
}
