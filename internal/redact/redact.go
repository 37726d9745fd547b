// Package redact removes credentials from strings before they are logged or
// returned in error responses. Upstream model providers sometimes echo the
// request URL or API key back in their error text, and that text is relayed
// to callers, so it passes through here first.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; specific key formats run before the generic
// assignment pattern so the placeholder reflects what was found.
var rules = []rule{
	// Authorization: Bearer <token>
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`), "${1}" + RedactedCredentialPlaceholder},
	// OpenAI-style secret keys
	{regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{16,}`), RedactedKeyPlaceholder},
	// Google API keys
	{regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
	// key=... query parameters as used by the Gemini REST API
	{regexp.MustCompile(`([?&](?:key|api_key|access_token)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// JWT tokens
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	// api_key: "...", secret=..., password=...
	{
		regexp.MustCompile(`(?i)\b(api[_-]?key|secret|password|token)(\s*[=:]\s*['"]?)[A-Za-z0-9_\-.~+/]{8,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
