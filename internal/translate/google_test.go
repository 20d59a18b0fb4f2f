package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gtxResponse builds the nested-array payload the web endpoint returns,
// one segment per input line.
func gtxResponse(pairs [][2]string) []byte {
	segments := make([]any, 0, len(pairs))
	for _, p := range pairs {
		segments = append(segments, []any{p[0], p[1], nil})
	}
	body, _ := json.Marshal([]any{segments, nil, "en"})
	return body
}

func newTestTranslator(t *testing.T, handler http.HandlerFunc) *GoogleTranslator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewGoogleTranslator(GoogleConfig{APIURL: srv.URL, Timeout: 5})
	require.NoError(t, err)
	return g
}

func TestTranslate(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "auto", r.URL.Query().Get("sl"))
		assert.Equal(t, "es", r.URL.Query().Get("tl"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Apple", r.PostForm.Get("q"))

		w.Write(gtxResponse([][2]string{{"Manzana", "Apple"}}))
	})

	out, err := g.Translate(context.Background(), "Apple", "es")
	require.NoError(t, err)
	assert.Equal(t, "Manzana", out)
}

func TestTranslate_BlankSkipsRequest(t *testing.T) {
	called := false
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	out, err := g.Translate(context.Background(), "   ", "es")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, called)
}

func TestTranslateBatch(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Apple\nA fruit", r.PostForm.Get("q"))

		// The endpoint splits multi-line input into segments that
		// reassemble with the newlines preserved.
		w.Write(gtxResponse([][2]string{
			{"Manzana\n", "Apple\n"},
			{"Una fruta", "A fruit"},
		}))
	})

	out, err := g.TranslateBatch(context.Background(), []string{"Apple", "A fruit"}, "es")
	require.NoError(t, err)
	assert.Equal(t, []string{"Manzana", "Una fruta"}, out)
}

func TestTranslateBatch_FlattensEmbeddedNewlines(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "a fruit that grows on trees", strings.Split(r.PostForm.Get("q"), "\n")[0])
		w.Write(gtxResponse([][2]string{{"una fruta", "a fruit"}}))
	})

	_, err := g.TranslateBatch(context.Background(), []string{"a fruit\nthat grows on trees"}, "es")
	require.NoError(t, err)
}

func TestTranslateBatch_CountMismatchIsError(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(gtxResponse([][2]string{{"solo uno", "only one"}}))
	})

	_, err := g.TranslateBatch(context.Background(), []string{"one", "two"}, "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestTranslate_HTTPError(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	_, err := g.Translate(context.Background(), "Apple", "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestTranslate_MalformedBody(t *testing.T) {
	g := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := g.Translate(context.Background(), "Apple", "es")
	assert.Error(t, err)
}

func TestNewGoogleTranslator_RequiresURL(t *testing.T) {
	_, err := NewGoogleTranslator(GoogleConfig{})
	assert.Error(t, err)
}
