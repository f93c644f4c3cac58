package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"finsim/internal/domain"
)

// ParseEvent strips the markdown fences a model tends to wrap its answer in
// and returns the remaining json object. it does not check the event shape
func ParseEvent(raw string) ([]byte, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if !strings.HasPrefix(cleaned, "{") {
		return nil, fmt.Errorf("%w: expected a json object, got %q", domain.ErrNarrativeParse, truncate(cleaned, 80))
	}
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: invalid json %q", domain.ErrNarrativeParse, truncate(cleaned, 80))
	}

	return []byte(cleaned), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
