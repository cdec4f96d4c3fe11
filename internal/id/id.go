package id

import "github.com/google/uuid"

// GenerateID returns a random identifier used to correlate a session's log lines.
func GenerateID() string {
	return uuid.NewString()
}
