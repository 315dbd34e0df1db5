package ai

import (
	"strings"

	_ "embed"
)

//go:embed prompt.md
var systemPrompt string

const userPromptTemplate = `Target Role: {{TARGET_ROLE}}

Resume Text:
{{RESUME_TEXT}}

Please analyze this resume for the specified role and provide detailed insights.`

// Prompt holds the two message roles of a chat-completion request. Providers
// without a separate system role concatenate both parts.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt renders the fixed analysis instructions together with the
// target role and extracted resume text.
func BuildPrompt(resumeText, targetRole string) Prompt {
	user := strings.ReplaceAll(userPromptTemplate, "{{TARGET_ROLE}}", strings.TrimSpace(targetRole))
	user = strings.ReplaceAll(user, "{{RESUME_TEXT}}", resumeText)

	return Prompt{
		System: strings.TrimSpace(systemPrompt),
		User:   user,
	}
}

// Combined joins the system and user parts into a single prompt for
// providers that take one text block.
func (p Prompt) Combined() string {
	return p.System + "\n\n" + p.User
}
