package role

import "strings"

// Words whose presence suggests the message mentions a target role.
var indicators = []string{
	"for", "as", "position", "role", "job", "analyze", "evaluate",
}

// Lead-in phrases stripped from the front of the message.
var prefixes = []string{
	"analyze this resume for", "analyze for", "evaluate for",
	"check for", "how well does this fit", "analyze this for",
}

// Trail-off words stripped from the end of the message.
var suffixes = []string{
	"position", "role", "job", "candidate",
}

const minMessageLength = 5

// Extract pulls a target role out of a casual user message, stripping common
// lead-in and trail-off phrases. The second return value is false when the
// message is too short to carry a role.
func Extract(message string) (string, bool) {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < minMessageLength {
		return "", false
	}

	lower := strings.ToLower(trimmed)

	if !containsIndicator(lower) {
		if len(trimmed) > 2 {
			return trimmed, true
		}
		return "", false
	}

	cleaned := trimmed
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToLower(cleaned), prefix) {
			cleaned = strings.TrimSpace(cleaned[len(prefix):])
			break
		}
	}

	for _, suffix := range suffixes {
		if strings.HasSuffix(strings.ToLower(cleaned), suffix) {
			cleaned = strings.TrimSpace(cleaned[:len(cleaned)-len(suffix)])
			break
		}
	}

	if len(cleaned) > 2 {
		return cleaned, true
	}

	return "", false
}

func containsIndicator(lower string) bool {
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
