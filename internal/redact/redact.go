// Package redact removes sensitive information from strings before they are
// logged or returned in error responses. Driver errors from the document store
// routinely embed connection strings, host names, and the offending key values
// of a failed unique index, none of which should reach a client.
package redact

import (
	"regexp"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order; earlier rules see the raw input.
var (
	rules = []rule{
		// Stack trace fragments
		{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},

		// Connection strings with user info
		{regexp.MustCompile(`(?i)(mongodb(?:\+srv)?|postgres|mysql|redis)://[^@\s/]+@`), RedactedCredentialPlaceholder},

		// Credentials and keys
		{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
		{regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/$]{8,}`), RedactedKeyPlaceholder},

		// bcrypt digests
		{regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`), "[REDACTED_DIGEST]"},

		// Values reported by a duplicate key error, e.g. dup key: { lastName: "Bach" }
		{regexp.MustCompile(`dup key: \{[^}]*\}`), "dup key: { [REDACTED] }"},

		// Email addresses
		{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},

		// File paths
		{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
		{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},

		// Host names with an optional port
		{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+(?:com|net|org|io|dev|local|internal)(?::\d{1,5})?\b`), RedactedHostPlaceholder},
		{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
	}

	mu sync.RWMutex
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
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
