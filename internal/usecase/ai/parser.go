package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/johnquangdev/meeting-summary/internal/domain/entities"
)

// ParseAnalysis decodes the model's raw text into a MeetingAnalysis.
// Markdown code fences around the JSON are tolerated; anything else that is
// not a single JSON object of the expected shape is an error.
func ParseAnalysis(raw string) (*entities.MeetingAnalysis, error) {
	dec := json.NewDecoder(bytes.NewBufferString(extractJSON(raw)))

	var result *entities.MeetingAnalysis
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, errors.New("failed to parse JSON response: multiple JSON values")
		}
		return nil, fmt.Errorf("failed to parse JSON response: trailing data: %w", err)
	}
	if result == nil {
		return nil, errors.New("failed to parse JSON response: null analysis")
	}

	result.Normalize()
	return result, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
