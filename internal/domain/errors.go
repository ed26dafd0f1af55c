package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("not_found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation")
)

// Specific duplicate conditions. Each unwraps to ErrConflict so callers can
// branch on the broad kind or the exact cause.
var (
	ErrDisplayNameTaken = conflict("display_name_taken")
	ErrTitleTaken       = conflict("title_taken")
	ErrAlreadyEvaluated = conflict("already_evaluated")
	ErrAlreadyInLibrary = conflict("already_in_library")
	ErrAlreadyFavorited = conflict("already_favorited")
	ErrAlreadyFollowing = conflict("already_following")
)

func conflict(code string) error {
	return fmt.Errorf("%w: %s", ErrConflict, code)
}

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}
