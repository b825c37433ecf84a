package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/spellcards"
	main "github.com/fwojciec/spellcards/cmd/spellcards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lumierePage = `<html><body>
<div class="content">
<h1>Lumière</h1>
<div class="trad">[ <a href="sorts.php?vo=light">Light</a> ]</div>
<div class="ecole">niveau 0 - évocation</div>
<div class="t"><strong>Temps d'incantation</strong> : 1 action</div>
<div class="r"><strong>Portée</strong> : contact</div>
<div class="c"><strong>Composantes</strong> : V, M (une luciole)</div>
<div class="d"><strong>Durée</strong> : 1 heure</div>
<div class="description">Vous touchez un objet qui émet une <em>lumière vive</em>.</div>
<div class="classe">Barde</div><div class="classe">Clerc</div>
</div>
</body></html>`

const clericListing = `<html><body><table>
<tr><td class="item"><a href="../dnd/sorts.php?vf=lumiere">Lumière</a></td></tr>
</table></body></html>`

// site serves spell pages and the filter listing, counting page requests.
func site(t *testing.T, pageHits *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/dnd/sorts.php", func(w http.ResponseWriter, r *http.Request) {
		pageHits.Add(1)
		if r.URL.Query().Get("vf") != "lumiere" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(lumierePage))
	})
	mux.HandleFunc("/dnd-filters/sorts.php", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(clericListing))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestMain(server *httptest.Server) *main.Main {
	m := main.NewMain()
	m.BaseURLs = map[spellcards.Kind]string{spellcards.KindSpell: server.URL + "/dnd/sorts.php"}
	m.FilterURL = server.URL + "/dnd-filters/sorts.php"
	return m
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints help without error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "scrape")
		assert.Contains(t, stdout.String(), "filter")
	})

	t.Run("fails without a command", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("rejects a negative rate", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(context.Background(), []string{
			"--rate=-1", "--cache-dir", t.TempDir(), "filter", "cleric:0:0",
		}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, spellcards.EINVALID, spellcards.ErrorCode(err))
	})

	t.Run("zero rate fetches every page", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := site(t, &hits)
		dir := t.TempDir()

		err := newTestMain(server).Run(context.Background(), []string{
			"--rate", "0", "--cache-dir", filepath.Join(dir, "cache"),
			"scrape", "--spells", "fr:lumiere,fr:inconnu,fr:absent", "-o", filepath.Join(dir, "cards.json"),
		}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 items failed")
		assert.Equal(t, int32(3), hits.Load())
	})

	t.Run("scrapes a filtered spell into a card file", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := site(t, &hits)
		dir := t.TempDir()
		out := filepath.Join(dir, "cards.json")
		stdout := &bytes.Buffer{}

		err := newTestMain(server).Run(context.Background(), []string{
			"--cache-dir", filepath.Join(dir, "cache"),
			"scrape", "--spells", "fr:lumiere", "--spell-filter", "clerc:0:0", "-o", out,
		}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())
		assert.Contains(t, stdout.String(), "Lumière")
		assert.Contains(t, stdout.String(), "Wrote 1 cards")

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		var cards []map[string]any
		require.NoError(t, json.Unmarshal(data, &cards))
		require.Len(t, cards, 1)
		assert.Equal(t, "Lumière", cards[0]["title"])
		assert.Equal(t, "Light", cards[0]["en_title"])
		assert.Equal(t, "evocation", cards[0]["school"])
		assert.Equal(t, "V, M", cards[0]["components"])
		assert.Equal(t, "Contact", cards[0]["casting_range"])
		assert.Equal(t, []any{"Vous touchez un objet qui émet une _lumière vive_."}, cards[0]["text"])

		_, err = os.Stat(filepath.Join(dir, "cache", "fr:lumiere.html"))
		assert.NoError(t, err)
	})

	t.Run("sqlite cache serves repeated scrapes", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := site(t, &hits)
		dir := t.TempDir()
		args := []string{
			"--cache-db", filepath.Join(dir, "cache.db"),
			"scrape", "--spells", "fr:lumiere", "-o", filepath.Join(dir, "cards.json"),
		}

		require.NoError(t, newTestMain(server).Run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}))
		require.NoError(t, newTestMain(server).Run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}))

		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("missing page fails the command but keeps other cards", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := site(t, &hits)
		dir := t.TempDir()
		out := filepath.Join(dir, "cards.json")
		stderr := &bytes.Buffer{}

		err := newTestMain(server).Run(context.Background(), []string{
			"--cache-dir", filepath.Join(dir, "cache"),
			"scrape", "--spells", "fr:lumiere,fr:inconnu", "-o", out,
		}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "fr:inconnu")
		assert.Contains(t, stderr.String(), "HTTP 404")

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		var cards []map[string]any
		require.NoError(t, json.Unmarshal(data, &cards))
		assert.Len(t, cards, 1)
	})

	t.Run("filter prints listing identifiers", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		server := site(t, &hits)
		stdout := &bytes.Buffer{}

		err := newTestMain(server).Run(context.Background(), []string{
			"--cache-dir", t.TempDir(), "filter", "cleric:0:0",
		}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "fr:lumiere\n", stdout.String())
	})
}
