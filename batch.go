package spellcards

import (
	"fmt"
	"strings"
)

// ItemError records the failure of a single identifier within a batch.
type ItemError struct {
	ID  Identifier
	Err error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.ID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// BatchError reports the items of a batch that failed. Records of the other
// items are still returned alongside it.
type BatchError struct {
	Total    int
	Failures []*ItemError
}

func (e *BatchError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("%d of %d items failed: %s", len(e.Failures), e.Total, strings.Join(msgs, "; "))
}

// Failed reports whether id is among the failures.
func (e *BatchError) Failed(id Identifier) bool {
	for _, f := range e.Failures {
		if f.ID == id {
			return true
		}
	}
	return false
}
