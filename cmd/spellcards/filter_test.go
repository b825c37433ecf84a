package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/spellcards"
	main "github.com/fwojciec/spellcards/cmd/spellcards"
	"github.com/fwojciec/spellcards/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints resolved identifiers", func(t *testing.T) {
		t.Parallel()

		var got []spellcards.SpellFilter
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Resolver: &mock.FilterResolver{
				ResolveFilterFn: func(_ context.Context, f spellcards.SpellFilter) ([]spellcards.Identifier, error) {
					got = append(got, f)
					return []spellcards.Identifier{{Lang: spellcards.French, Slug: "assistance"}}, nil
				},
			},
		}

		err := (&main.FilterCmd{Filters: []string{"cleric:0:1", "clerc:0:0"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []spellcards.SpellFilter{
			{Class: "c", MinLevel: 0, MaxLevel: 1},
			{Class: "c", MinLevel: 0, MaxLevel: 0},
		}, got)
		assert.Equal(t, "fr:assistance\n", stdout.String())
	})

	t.Run("reports empty listing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Resolver: &mock.FilterResolver{
				ResolveFilterFn: func(_ context.Context, _ spellcards.SpellFilter) ([]spellcards.Identifier, error) {
					return nil, nil
				},
			},
		}

		err := (&main.FilterCmd{Filters: []string{"paladin:5:5"}}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No spells match.")
	})

	t.Run("rejects invalid level range", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Resolver: &mock.FilterResolver{},
		}

		err := (&main.FilterCmd{Filters: []string{"cleric:3:1"}}).Run(deps)

		assert.Equal(t, spellcards.EINVALID, spellcards.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid spell level range 3-1")
	})
}
