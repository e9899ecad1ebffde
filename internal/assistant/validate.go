package assistant

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Recommendation is the short title+text pair accompanying a reply.
type Recommendation struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Tip is one structured insight card. All nine fields are mandatory in a
// valid model reply; Type must come from the closed set and Confidence must
// sit in [70,98].
type Tip struct {
	ID          int    `json:"id"`
	Type        string `json:"type" validate:"oneof=priority warning info activity health planning"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Confidence  int    `json:"confidence" validate:"gte=70,lte=98"`
	BgColor     string `json:"bgColor"`
	BorderColor string `json:"borderColor"`
	IconBg      string `json:"iconBg"`
}

// Reply is the validated, safe-to-render assistant payload. Confidence is
// kept as raw JSON: a valid reply passes through whatever the model supplied
// (number or "NN%" string), while every fallback emits the literal string
// "0%". The asymmetry is deliberate product behavior.
type Reply struct {
	Content        string          `json:"content"`
	Recommendation Recommendation  `json:"recommendation"`
	AdditionalTips []Tip           `json:"additional_tips"`
	Confidence     json.RawMessage `json:"confidence"`
}

// maxContentRunes caps every sanitized text field.
const maxContentRunes = 1000

var validate = validator.New()

var requiredFields = []string{"text", "recommendation", "additional_tips", "confidence"}

var requiredTipFields = []string{
	"id", "type", "icon", "title", "content",
	"confidence", "bgColor", "borderColor", "iconBg",
}

// ParseAndValidate takes the raw string nominally containing the model's JSON
// reply and always returns a renderable Reply. Single pass, no retries:
// empty input or a parse failure falls back with no salvaged text; a
// well-formed object failing semantic validation falls back but keeps the
// sanitized original "text" value as content.
func ParseAndValidate(raw string) Reply {
	if raw == "" {
		return fallbackReply("")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		log.Printf("assistant: model reply is not a JSON object: %v", err)
		return fallbackReply("")
	}

	reply, err := validateReply(top)
	if err != nil {
		log.Printf("assistant: model reply failed validation: %v", err)
		return fallbackReply(salvageText(top))
	}
	return reply
}

func validateReply(top map[string]json.RawMessage) (Reply, error) {
	for _, field := range requiredFields {
		if _, ok := top[field]; !ok {
			return Reply{}, fmt.Errorf("missing required field %q", field)
		}
	}

	var text string
	if err := json.Unmarshal(top["text"], &text); err != nil {
		return Reply{}, fmt.Errorf("invalid text field: %w", err)
	}
	// JSON null unmarshals into a string as a no-op, so a null or blank text
	// would otherwise pass and render an empty reply.
	if strings.TrimSpace(text) == "" {
		return Reply{}, errors.New("empty text field")
	}

	var rec Recommendation
	if err := json.Unmarshal(top["recommendation"], &rec); err != nil {
		return Reply{}, fmt.Errorf("invalid recommendation: %w", err)
	}
	if rec.Title == "" || rec.Text == "" {
		return Reply{}, errors.New("invalid recommendation structure")
	}

	var rawTips []json.RawMessage
	if err := json.Unmarshal(top["additional_tips"], &rawTips); err != nil {
		return Reply{}, errors.New("additional_tips must be an array")
	}

	tips := make([]Tip, 0, len(rawTips))
	for i, rawTip := range rawTips {
		tip, err := validateTip(rawTip)
		if err != nil {
			return Reply{}, fmt.Errorf("tip %d: %w", i, err)
		}
		tips = append(tips, tip)
	}

	return Reply{
		Content: sanitizeText(text),
		Recommendation: Recommendation{
			Title: sanitizeText(rec.Title),
			Text:  sanitizeText(rec.Text),
		},
		AdditionalTips: tips,
		Confidence:     top["confidence"],
	}, nil
}

// validateTip checks field presence on the raw object, then unmarshals and
// runs the schema validation (closed type set, confidence range).
func validateTip(raw json.RawMessage) (Tip, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Tip{}, errors.New("not an object")
	}

	var missing []string
	for _, field := range requiredTipFields {
		if _, ok := fields[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return Tip{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	var tip Tip
	if err := json.Unmarshal(raw, &tip); err != nil {
		return Tip{}, err
	}
	if err := validate.Struct(tip); err != nil {
		return Tip{}, err
	}
	return tip, nil
}

// salvageText recovers the original "text" field from an already-parsed
// object, for the semantic-failure fallback branch.
func salvageText(top map[string]json.RawMessage) string {
	raw, ok := top["text"]
	if !ok {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return ""
	}
	return text
}

// sanitizeText trims, strips ASCII control characters and caps the length at
// maxContentRunes runes.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, text)
	if runes := []rune(text); len(runes) > maxContentRunes {
		text = string(runes[:maxContentRunes])
	}
	return text
}

// fallbackReply is the fixed, deterministic payload substituted when
// validation fails. The salvaged text (when the JSON at least parsed) becomes
// the content; everything else is constant, including the "0%" confidence.
func fallbackReply(salvaged string) Reply {
	content := "Răspuns primit, dar în format neașteptat."
	if s := sanitizeText(salvaged); s != "" {
		content = s
	}

	return Reply{
		Content: content,
		Recommendation: Recommendation{
			Title: "🛠️ Eroare tehnică:",
			Text:  "Te rog încearcă din nou peste câteva secunde",
		},
		AdditionalTips: []Tip{
			{
				ID:          1,
				Type:        "info",
				Icon:        "🔧",
				Title:       "Reîncercare",
				Content:     "Verifică conexiunea și încearcă din nou",
				Confidence:  70,
				BgColor:     "bg-blue-50",
				BorderColor: "border-l-blue-500",
				IconBg:      "bg-white/70",
			},
		},
		Confidence: json.RawMessage(`"0%"`),
	}
}
