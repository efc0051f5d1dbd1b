package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanMarkdownWrapper strips code fences some models wrap around JSON
// payloads.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// parseResponse validates a provider completion against the response
// schema. Malformed responses are failures, never coerced.
func parseResponse(content string) (Response, error) {
	content = cleanMarkdownWrapper(content)

	var resp Response
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return Response{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if resp.SuggestedCategory == "" {
		return Response{}, fmt.Errorf("no category found in response")
	}

	if resp.ConfidenceScore < 0 || resp.ConfidenceScore > 1 {
		return Response{}, fmt.Errorf("confidence score %v outside [0,1]", resp.ConfidenceScore)
	}

	return resp, nil
}
