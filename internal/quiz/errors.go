package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when the requested question count is not positive.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidVersions is returned when the version list is empty or holds
	// blank or duplicate labels.
	ErrInvalidVersions = errors.New("invalid versions")
)

// SizeCappedWarning reports that more questions were requested than there are
// distinct scenarios. Generation still succeeds with Capped questions.
type SizeCappedWarning struct {
	Requested int
	Capped    int
}

func (w *SizeCappedWarning) Error() string {
	return fmt.Sprintf("requested %d questions but only %d distinct scenarios exist; using %d", w.Requested, w.Capped, w.Capped)
}
