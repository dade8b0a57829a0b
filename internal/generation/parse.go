package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/ziadkadry99/chunlian/internal/model"
)

var fencePattern = regexp.MustCompile("```json\\n?|\\n?```")

// StripFences removes ```json ... ``` markdown fencing and trims whitespace.
func StripFences(content string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(content, ""))
}

// ParseCouplet decodes a model reply into a CoupletResult.
func ParseCouplet(content string) (*model.CoupletResult, error) {
	var c model.CoupletResult
	if err := json.Unmarshal([]byte(StripFences(content)), &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var missing []string
	if c.Upper == "" {
		missing = append(missing, "upper")
	}
	if c.Lower == "" {
		missing = append(missing, "lower")
	}
	if c.Horizontal == "" {
		missing = append(missing, "horizontal")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}
	return &c, nil
}

// ParseFortune decodes a model reply into a FortuneCard. An empty id is
// replaced by a random UUID; unknown trigrams are kept as-is.
func ParseFortune(content string) (*model.FortuneCard, error) {
	var f model.FortuneCard
	if err := json.Unmarshal([]byte(StripFences(content)), &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var missing []string
	if f.Title == "" {
		missing = append(missing, "title")
	}
	if f.Content == "" {
		missing = append(missing, "content")
	}
	if f.Blessing == "" {
		missing = append(missing, "blessing")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}
	if !f.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown fortune type %q", ErrMalformedResponse, f.Type)
	}

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return &f, nil
}
