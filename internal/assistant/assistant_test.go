package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vremea/weather-dashboard/internal/assistant/openai"
)

type stubCompleter struct {
	reply string
	err   error

	gotSystem   openai.Message
	gotMessages []openai.Message
}

func (c *stubCompleter) ChatCompletion(ctx context.Context, system openai.Message, messages []openai.Message) (*openai.Result, error) {
	c.gotSystem = system
	c.gotMessages = messages
	if c.err != nil {
		return nil, c.err
	}
	return &openai.Result{Status: 200, Message: openai.Message{Role: "assistant", Content: c.reply}}, nil
}

func TestAskAppendsValidatedReply(t *testing.T) {
	stub := &stubCompleter{reply: validReplyJSON()}
	a := New(stub, time.Hour)

	sess := a.Ask(context.Background(), testSnapshot(), "", "Ce vreme e afară?")

	// greeting + user + assistant
	if len(sess.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(sess.Messages))
	}

	last := sess.Messages[2]
	if last.Role != RoleAssistant {
		t.Fatalf("expected an assistant turn, got %q", last.Role)
	}
	if last.Content != "Azi e senin și cald, ideal pentru plimbări." {
		t.Errorf("unexpected content %q", last.Content)
	}
	if last.Recommendation == nil || last.Recommendation.Title != "🧥 Îmbrăcăminte" {
		t.Errorf("expected the recommendation on the message, got %+v", last.Recommendation)
	}
	if len(last.AdditionalTips) != 2 {
		t.Errorf("expected 2 tips, got %d", len(last.AdditionalTips))
	}
	if string(last.Confidence) != `"95%"` {
		t.Errorf("expected confidence passed through, got %s", last.Confidence)
	}
}

// TestAskSendsContextAndHistory verifies the outbound shape: the weather
// context as the per-request system message and a history without the
// greeting.
func TestAskSendsContextAndHistory(t *testing.T) {
	stub := &stubCompleter{reply: validReplyJSON()}
	a := New(stub, time.Hour)

	a.Ask(context.Background(), testSnapshot(), "", "Ce vreme e afară?")

	if stub.gotSystem.Role != "system" {
		t.Errorf("expected a system context message, got role %q", stub.gotSystem.Role)
	}
	if stub.gotSystem.Content == "" {
		t.Error("expected a non-empty weather context")
	}
	if len(stub.gotMessages) != 1 {
		t.Fatalf("expected the greeting to be filtered out, got %d messages", len(stub.gotMessages))
	}
	if stub.gotMessages[0].Role != "user" || stub.gotMessages[0].Content != "Ce vreme e afară?" {
		t.Errorf("unexpected history %+v", stub.gotMessages)
	}
}

// TestAskTransportFailure verifies the fixed apology turn when the completion
// call fails.
func TestAskTransportFailure(t *testing.T) {
	stub := &stubCompleter{err: errors.New("boom")}
	a := New(stub, time.Hour)

	sess := a.Ask(context.Background(), testSnapshot(), "", "Ce vreme e afară?")

	last := sess.Messages[len(sess.Messages)-1]
	if last.Role != RoleAssistant || last.Content != transportErrorText {
		t.Errorf("expected the apology turn, got %+v", last)
	}
	if last.Recommendation != nil {
		t.Error("expected no recommendation on a transport failure")
	}
}

func TestAskEmptyMessage(t *testing.T) {
	stub := &stubCompleter{reply: validReplyJSON()}
	a := New(stub, time.Hour)

	sess := a.Ask(context.Background(), testSnapshot(), "", "   ")
	if len(sess.Messages) != 1 {
		t.Errorf("expected the session untouched for a blank message, got %d messages", len(sess.Messages))
	}
	if stub.gotMessages != nil {
		t.Error("expected no completion call for a blank message")
	}
}

// TestAskSnapshotChangeResets verifies that a new snapshot id wipes the
// conversation before the new turn is processed.
func TestAskSnapshotChangeResets(t *testing.T) {
	stub := &stubCompleter{reply: validReplyJSON()}
	a := New(stub, time.Hour)

	snap := testSnapshot()
	sess := a.Ask(context.Background(), snap, "", "Ce vreme e afară?")

	snap2 := testSnapshot()
	snap2.ID = "snap-2"
	sess2 := a.Ask(context.Background(), snap2, sess.ID, "Și mâine?")

	if sess2.ID != sess.ID {
		t.Fatal("expected the same session to be reused")
	}
	// greeting + the new user turn + assistant reply
	if len(sess2.Messages) != 3 {
		t.Fatalf("expected a reset conversation, got %d messages", len(sess2.Messages))
	}
	if sess2.Messages[1].Content != "Și mâine?" {
		t.Errorf("unexpected first user turn %q", sess2.Messages[1].Content)
	}
}
