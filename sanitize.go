package gql

import (
	"regexp"
	"strings"
)

var (
	sensitiveFieldPattern = regexp.MustCompile(`(?i)"?(access_token|refresh_token|client_secret|accessToken|refreshToken|clientSecret|password|token|secret|authorization)"?\s*:\s*"[^"]*"`)
	authHeaderPattern     = regexp.MustCompile(`(?i)(bearer)\s+[A-Za-z0-9._~+/=-]+`)
	jwtPattern            = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)
)

const redactedText = "[REDACTED]"

// sanitizeForLogging strips credentials out of payloads and header values before they are logged.
func sanitizeForLogging(input string) string {
	if input == "" {
		return input
	}
	out := sensitiveFieldPattern.ReplaceAllStringFunc(input, func(match string) string {
		name, _, _ := strings.Cut(match, ":")
		return name + `: "` + redactedText + `"`
	})
	out = authHeaderPattern.ReplaceAllString(out, "${1} "+redactedText)
	return jwtPattern.ReplaceAllString(out, redactedText)
}
