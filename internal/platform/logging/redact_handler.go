package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields lists attribute names (lowercase) whose values never reach
// the log. Screens attach host data such as account or session details to
// their own log lines through the same logger.
var SensitiveFields = []string{
	"authorization",
	"password",
	"secret",
	"token",
	"session_id",
}

// sensitivePrefixes catch variants such as secret_key or token_refresh.
var sensitivePrefixes = []string{"secret_", "token_", "api_key"}

var sensitiveValues = []*regexp.Regexp{
	// Bearer <token>
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// header.payload.signature, at least 10 chars per segment so version
	// strings and dotted screen ids are left alone.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// api_key=<value>, apikey: <value>
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// newRedactAttr returns the masq ReplaceAttr used by every handler New
// builds. Fields are matched by name, by prefix and by value pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))
	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
