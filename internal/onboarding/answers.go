// Package onboarding parses stored onboarding answers into typed values.
//
// Answers are semi-structured JSON written by the onboarding flow. A value
// that does not have the expected shape is reported as Absent rather than
// as an error, so scoring can continue with whatever signals remain.
package onboarding

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Question keys consumed by the recommender.
const (
	KeyInterests        = "interests"
	KeyCurrentSituation = "current_situation"
)

const interestsSchema = `{
	"type": "array",
	"items": {"type": "string"}
}`

const situationSchema = `{
	"type": "object",
	"required": ["situation"],
	"properties": {
		"situation": {"type": "string"}
	}
}`

var (
	interestsValidator = mustCompile(KeyInterests, interestsSchema)
	situationValidator = mustCompile(KeyCurrentSituation, situationSchema)
)

// Answer is one of Interests, Situation or Absent.
type Answer interface {
	answer()
}

// Interests holds the interest tags a user picked, in stored order.
type Interests struct {
	Tags []string
}

// Situation holds the single current-situation tag.
type Situation struct {
	Tag string
}

// Absent means there is no usable answer. Reason is empty when nothing was stored.
type Absent struct {
	Reason string
}

func (Interests) answer() {}
func (Situation) answer() {}
func (Absent) answer()    {}

// Malformed reports whether the answer was stored but unusable.
func (a Absent) Malformed() bool {
	return a.Reason != ""
}

// ParseInterests converts a stored "interests" value into Interests or Absent.
func ParseInterests(raw json.RawMessage) Answer {
	if isMissing(raw) {
		return Absent{}
	}
	if err := validate(interestsValidator, raw); err != nil {
		return Absent{Reason: err.Error()}
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return Absent{Reason: fmt.Sprintf("decode interests: %v", err)}
	}

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return Interests{Tags: cleaned}
}

// ParseSituation converts a stored "current_situation" value into Situation or Absent.
// An empty situation string is treated as not answered.
func ParseSituation(raw json.RawMessage) Answer {
	if isMissing(raw) {
		return Absent{}
	}
	if err := validate(situationValidator, raw); err != nil {
		return Absent{Reason: err.Error()}
	}

	var value struct {
		Situation string `json:"situation"`
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return Absent{Reason: fmt.Sprintf("decode situation: %v", err)}
	}

	tag := strings.TrimSpace(value.Situation)
	if tag == "" {
		return Absent{}
	}
	return Situation{Tag: tag}
}

// SituationValue is the stored form of a current-situation answer.
type SituationValue string

// MarshalJSON writes the value as {"situation": "..."}, the shape ParseSituation reads.
func (v SituationValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Situation string `json:"situation"`
	}{Situation: string(v)})
}

// Parse dispatches on the question key. Unknown keys are Absent.
func Parse(questionKey string, raw json.RawMessage) Answer {
	switch questionKey {
	case KeyInterests:
		return ParseInterests(raw)
	case KeyCurrentSituation:
		return ParseSituation(raw)
	default:
		return Absent{Reason: fmt.Sprintf("unsupported question key %q", questionKey)}
	}
}

// isMissing treats no bytes and JSON null the same way. A stored null
// carries no answer, so it is not counted as malformed.
func isMissing(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

func validate(schema *gojsonschema.Schema, raw json.RawMessage) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("load answer: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		msgs = append(msgs, field+": "+desc.Description())
	}
	return fmt.Errorf("invalid answer: %s", strings.Join(msgs, "; "))
}

func mustCompile(name, schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("onboarding: compile %s schema: %v", name, err))
	}
	return compiled
}
