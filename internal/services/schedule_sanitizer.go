package services

import (
	"encoding/json"
	"strings"

	"namdo/pkg/utils"
)

// GeneratedActivity is one schedule row as emitted by the model, before
// validation. All fields are plain strings; missing keys decode to "".
type GeneratedActivity struct {
	Time     string `json:"time"`
	Place    string `json:"place"`
	Activity string `json:"activity"`
	Addr     string `json:"addr"`
}

// StripCodeFence removes a matching leading/trailing markdown fence pair
// (``` or ```json) around the reply. Already-clean input passes through
// unchanged, so the function is idempotent.
func StripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(trimmed, "```json") && strings.HasSuffix(trimmed, "```") && len(trimmed) > len("```json")+len("```"):
		return strings.TrimSpace(trimmed[len("```json") : len(trimmed)-len("```")])
	case strings.HasPrefix(trimmed, "```") && strings.HasSuffix(trimmed, "```") && len(trimmed) > len("```")+len("```"):
		return strings.TrimSpace(trimmed[len("```") : len(trimmed)-len("```")])
	}

	return trimmed
}

// ParseScheduleJSON sanitizes and strictly parses a model reply into the
// date -> activities tree. Broken JSON is never repaired: the caller gets a
// MalformedOutputError carrying the reply verbatim.
func ParseScheduleJSON(raw string) (map[string][]GeneratedActivity, error) {
	cleaned := StripCodeFence(raw)

	var schedule map[string][]GeneratedActivity
	if err := json.Unmarshal([]byte(cleaned), &schedule); err != nil {
		return nil, &utils.MalformedOutputError{Raw: raw, Err: err}
	}

	return schedule, nil
}
