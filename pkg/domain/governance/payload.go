package governance

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// PromptPreviewPayload is the typed payload of prompt_preview events.
type PromptPreviewPayload struct {
	TaskType string `mapstructure:"task_type"`
}

// EvaluationPayload is the typed payload of blocked and allowed events.
type EvaluationPayload struct {
	MatchedRules []string `mapstructure:"matched_rules"`
}

// DecodePayload maps the open payload of an event onto a typed schema.
// Payloads stay schema-less in the log; consumers that know the event type
// decode them lazily through this helper.
func DecodePayload(event *GovernanceEvent, out any) error {
	if err := mapstructure.Decode(event.Payload, out); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", event.EventType, err)
	}
	return nil
}
