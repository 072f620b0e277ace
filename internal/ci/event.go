package ci

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ErrNoTitle is returned when an event payload carries no pull-request title.
var ErrNoTitle = errors.New("event payload has no pull_request.title")

// pullRequestEvent mirrors the slice of the GitHub webhook payload the
// linter needs. The payload is decoded loosely: unknown fields are ignored.
type pullRequestEvent struct {
	PullRequest struct {
		Title string `mapstructure:"title"`
	} `mapstructure:"pull_request"`
}

// TitleFromEvent extracts pull_request.title from a GitHub event payload
// file (the file $GITHUB_EVENT_PATH points at during a workflow run).
func TitleFromEvent(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ci: read event payload: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("ci: parse event payload %s: %w", path, err)
	}

	var event pullRequestEvent
	if err := mapstructure.Decode(payload, &event); err != nil {
		return "", fmt.Errorf("ci: decode event payload: %w", err)
	}
	if event.PullRequest.Title == "" {
		return "", ErrNoTitle
	}
	return event.PullRequest.Title, nil
}
