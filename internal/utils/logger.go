package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per domain event. The message should be an
// identifier (booking reference, email), never a payload.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
