package spellcards_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/spellcards"
	"github.com/stretchr/testify/assert"
)

func TestBatchError(t *testing.T) {
	t.Parallel()

	bad := spellcards.Identifier{Lang: spellcards.French, Slug: "inconnu"}
	cause := spellcards.Errorf(spellcards.ENOTFOUND, "inconnu not found")
	err := &spellcards.BatchError{
		Total:    3,
		Failures: []*spellcards.ItemError{{ID: bad, Err: cause}},
	}

	assert.Contains(t, err.Error(), "1 of 3 items failed")
	assert.Contains(t, err.Error(), "fr:inconnu")
	assert.True(t, err.Failed(bad))
	assert.False(t, err.Failed(spellcards.Identifier{Lang: spellcards.French, Slug: "lumiere"}))

	var itemErr *spellcards.ItemError
	assert.True(t, errors.As(err.Failures[0], &itemErr))
	assert.Equal(t, spellcards.ENOTFOUND, spellcards.ErrorCode(itemErr))
}
