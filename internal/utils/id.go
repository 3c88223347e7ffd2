package utils

import "github.com/google/uuid"

// GenerateID returns a new random identifier for records and sessions.
func GenerateID() string {
	return uuid.NewString()
}
