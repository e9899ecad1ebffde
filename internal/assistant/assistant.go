// Package assistant layers the conversational WeatherBot on top of a weather
// snapshot: it formats the grounding context, calls the chat-completion
// backend and validates the reply into a renderable shape.
package assistant

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/vremea/weather-dashboard/internal/assistant/openai"
	"github.com/vremea/weather-dashboard/internal/weather"
)

// transportErrorText is appended as the assistant turn when the completion
// call itself fails.
const transportErrorText = "Îmi pare rău, am întâmpinat o problemă tehnică. Te rog încearcă din nou. 🔧"

// Completer is the chat-completion backend contract.
type Completer interface {
	ChatCompletion(ctx context.Context, system openai.Message, messages []openai.Message) (*openai.Result, error)
}

// Assistant owns the conversations and turns user questions into validated
// assistant replies grounded in the current snapshot.
type Assistant struct {
	client   Completer
	sessions *SessionManager
}

// New creates an Assistant whose idle conversations expire after sessionTTL.
func New(client Completer, sessionTTL time.Duration) *Assistant {
	return &Assistant{
		client:   client,
		sessions: NewSessionManager(sessionTTL),
	}
}

// Ask appends the user's message to the session bound to snap, queries the
// model with the weather context and the non-system history, validates the
// reply and appends it. Model misbehavior never surfaces as an error: shape
// failures collapse to the fallback payload, transport failures to a fixed
// apology turn.
func (a *Assistant) Ask(ctx context.Context, snap *weather.Snapshot, sessionID, text string) *Session {
	loc := snap.TimeLocation()
	sess := a.sessions.Session(sessionID, snap.ID, loc)

	text = strings.TrimSpace(text)
	if text == "" {
		return sess
	}

	a.sessions.Append(sess, a.sessions.NewMessage(RoleUser, text, loc))

	contextMsg := openai.Message{Role: "system", Content: FormatWeatherContext(snap)}
	history := make([]openai.Message, 0, len(sess.Messages))
	for _, msg := range sess.Messages {
		if msg.Role == RoleSystem {
			continue
		}
		history = append(history, openai.Message{Role: string(msg.Role), Content: msg.Content})
	}

	result, err := a.client.ChatCompletion(ctx, contextMsg, history)
	if err != nil {
		log.Printf("assistant: chat completion failed: %v", err)
		a.sessions.Append(sess, a.sessions.NewMessage(RoleAssistant, transportErrorText, loc))
		return sess
	}

	reply := ParseAndValidate(result.Message.Content)
	msg := a.sessions.NewMessage(RoleAssistant, reply.Content, loc)
	rec := reply.Recommendation
	msg.Recommendation = &rec
	msg.AdditionalTips = reply.AdditionalTips
	msg.Confidence = reply.Confidence
	a.sessions.Append(sess, msg)

	return sess
}
