package domain

import "strings"

// ParseStatus normalizes raw input to the canonical lowercase status.
// Input is matched case-insensitively.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPlaying:
		return StatusPlaying, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusPlatinum:
		return StatusPlatinum, nil
	default:
		return "", NewValidationError(map[string]string{
			"status": "must be one of playing, completed, platinum",
		})
	}
}
