package translate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termglot/termglot/internal/progress"
)

// fakeProvider prefixes translations and can be told to fail whole batches
// or individual items.
type fakeProvider struct {
	batchCalls  int
	singleCalls int
	failBatches map[int]bool // fails the nth TranslateBatch call (0-based)
	failItems   map[string]bool
}

func (f *fakeProvider) Translate(_ context.Context, text, target string) (string, error) {
	f.singleCalls++
	if f.failItems[text] {
		return "", fmt.Errorf("item rejected: %s", text)
	}
	return target + ":" + text, nil
}

func (f *fakeProvider) TranslateBatch(_ context.Context, texts []string, target string) ([]string, error) {
	call := f.batchCalls
	f.batchCalls++
	if f.failBatches[call] {
		return nil, fmt.Errorf("batch rejected")
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		if t == "" {
			out[i] = ""
			continue
		}
		out[i] = target + ":" + t
	}
	return out, nil
}

func texts(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Output()
	}
	return out
}

func TestTranslateAll_LengthInvariant(t *testing.T) {
	for _, size := range []int{1, 2, 3, 50} {
		provider := &fakeProvider{}
		c := NewChunker(provider, size, 0, nil)

		values := []string{"a", "b", "c", "d", "e"}
		results := c.TranslateAll(context.Background(), values, "hi")
		assert.Len(t, results, len(values), "chunk size %d", size)
	}
}

func TestTranslateAll_TranslatesInOrder(t *testing.T) {
	provider := &fakeProvider{}
	c := NewChunker(provider, 2, 0, nil)

	results := c.TranslateAll(context.Background(), []string{"a", "b", "c"}, "fr")
	assert.Equal(t, []string{"fr:a", "fr:b", "fr:c"}, texts(results))
	assert.Equal(t, 2, provider.batchCalls)
}

func TestTranslateAll_DegradedBatchKeepsRowOrder(t *testing.T) {
	provider := &fakeProvider{
		failBatches: map[int]bool{1: true},
		failItems:   map[string]bool{"d": true},
	}
	c := NewChunker(provider, 2, 0, nil)

	results := c.TranslateAll(context.Background(), []string{"a", "b", "c", "d"}, "hi")
	require.Len(t, results, 4)

	assert.Equal(t, "hi:a", results[0].Output())
	assert.Equal(t, "hi:b", results[1].Output())
	// Batch two degraded: c recovered per item, d failed for good.
	assert.Equal(t, "hi:c", results[2].Output())
	assert.True(t, results[3].Failed())
	assert.Equal(t, ErrorPlaceholder, results[3].Output())
}

func TestTranslateAll_EmptyBatchShortCircuit(t *testing.T) {
	provider := &fakeProvider{}
	c := NewChunker(provider, 2, 0, nil)

	results := c.TranslateAll(context.Background(), []string{"", "   ", "\t"}, "hi")
	assert.Equal(t, []string{"", "", ""}, texts(results))
	assert.Zero(t, provider.batchCalls)
	assert.Zero(t, provider.singleCalls)
}

func TestTranslateAll_BlanksInsideMixedBatch(t *testing.T) {
	provider := &fakeProvider{}
	c := NewChunker(provider, 3, 0, nil)

	results := c.TranslateAll(context.Background(), []string{"a", "  ", "b"}, "hi")
	assert.Equal(t, []string{"hi:a", "", "hi:b"}, texts(results))
	assert.Equal(t, 1, provider.batchCalls)
}

func TestTranslateAll_DegradedPathSkipsEmptyItems(t *testing.T) {
	provider := &fakeProvider{failBatches: map[int]bool{0: true}}
	c := NewChunker(provider, 3, 0, nil)

	results := c.TranslateAll(context.Background(), []string{"a", "", "b"}, "hi")
	assert.Equal(t, []string{"hi:a", "", "hi:b"}, texts(results))
	// Only the two non-empty items hit the per-item path.
	assert.Equal(t, 2, provider.singleCalls)
}

func TestTranslateAll_AdvancesTrackerPerChunk(t *testing.T) {
	provider := &fakeProvider{}
	tracker := progress.NewTracker(3, nil)
	c := NewChunker(provider, 2, 0, tracker)

	c.TranslateAll(context.Background(), []string{"a", "b", "c", "", ""}, "hi")

	processed, total := tracker.Snapshot()
	assert.Equal(t, 3, processed)
	assert.Equal(t, 3, total)
}

func TestTranslateAll_CancelledContext(t *testing.T) {
	provider := &fakeProvider{}
	c := NewChunker(provider, 2, 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := c.TranslateAll(ctx, []string{"a", "b", "c"}, "hi")
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Failed())
	}
	assert.Zero(t, provider.batchCalls)
}

func TestResultOutput(t *testing.T) {
	ok := Result{Text: "bonjour"}
	assert.False(t, ok.Failed())
	assert.Equal(t, "bonjour", ok.Output())

	failed := Result{Err: fmt.Errorf("boom")}
	assert.True(t, failed.Failed())
	assert.True(t, strings.HasPrefix(failed.Output(), "["))
	assert.Equal(t, ErrorPlaceholder, failed.Output())
}
