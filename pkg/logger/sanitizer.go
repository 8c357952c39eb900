package logger

import (
	"regexp"

	"go.uber.org/zap"
)

// Sensitive fragments filtered from logged error text.
var (
	passwordPattern = regexp.MustCompile(`(?i)(password|passwd|pwd)[\s:=]+[^\s]+`)
	bearerPattern   = regexp.MustCompile(`(?i)(bearer)\s+[^\s]+`)
	secretPattern   = regexp.MustCompile(`(?i)(secret|private[_-]?key)[\s:=]+[^\s]+`)
	jwtPattern      = regexp.MustCompile(`eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
	dsnPattern      = regexp.MustCompile(`(://[^:/\s]+:)[^@\s]+@`)
)

const redactedPlaceholder = "[REDACTED]"

// SanitizeLogMessage removes credentials from a log message.
func SanitizeLogMessage(message string) string {
	message = jwtPattern.ReplaceAllString(message, redactedPlaceholder)
	message = bearerPattern.ReplaceAllString(message, "${1} "+redactedPlaceholder)
	message = passwordPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = secretPattern.ReplaceAllString(message, "${1}="+redactedPlaceholder)
	message = dsnPattern.ReplaceAllString(message, "${1}"+redactedPlaceholder+"@")
	return message
}

// Error is zap.Error with the message sanitized.
func Error(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.String("error", SanitizeLogMessage(err.Error()))
}
