package translate

import (
	"context"
	"strings"
	"time"

	"github.com/termglot/termglot/internal/progress"
	"github.com/termglot/termglot/pkg/log"
)

const (
	// DefaultChunkSize is how many values travel in one batched request.
	DefaultChunkSize = 50
	// DefaultDelay is the courtesy pause between batches toward the
	// provider.
	DefaultDelay = 1500 * time.Millisecond
)

// Chunker splits a flat sequence of values into fixed-size batches,
// translates each batch, and degrades to per-item translation when a batch
// fails. Batches run strictly sequentially within one Chunker; concurrency
// lives a level up, across languages.
type Chunker struct {
	provider  Provider
	chunkSize int
	delay     time.Duration
	tracker   *progress.Tracker
}

// NewChunker creates a chunker. Non-positive chunkSize or negative delay
// fall back to the defaults; tracker may be nil.
func NewChunker(provider Provider, chunkSize int, delay time.Duration, tracker *progress.Tracker) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Chunker{
		provider:  provider,
		chunkSize: chunkSize,
		delay:     delay,
		tracker:   tracker,
	}
}

// TranslateAll translates values into targetCode, returning one Result per
// input in input order. A failed batch degrades to per-item calls; an item
// that still fails carries its error in the Result rather than aborting the
// rest.
func (c *Chunker) TranslateAll(ctx context.Context, values []string, targetCode string) []Result {
	results := make([]Result, 0, len(values))

	for i := 0; i < len(values); i += c.chunkSize {
		end := min(i+c.chunkSize, len(values))
		batch := cleanBatch(values[i:end])

		// All-blank batches never cost a remote call.
		if allEmpty(batch) {
			for range batch {
				results = append(results, Result{})
			}
			c.advance()
			continue
		}

		if ctx.Err() != nil {
			for range batch {
				results = append(results, Result{Err: ctx.Err()})
			}
			c.advance()
			continue
		}

		translated, err := c.provider.TranslateBatch(ctx, batch, targetCode)
		if err != nil {
			log.Warn("Batch %d-%d failed for %s, retrying items one by one: %v", i+1, end, targetCode, err)
			results = append(results, c.translateEach(ctx, batch, targetCode)...)
		} else {
			for _, text := range translated {
				results = append(results, Result{Text: text})
			}
		}

		c.advance()
		c.pause(ctx)
	}

	return results
}

// translateEach is the degraded path: one remote call per non-empty item,
// failures recorded per item.
func (c *Chunker) translateEach(ctx context.Context, batch []string, targetCode string) []Result {
	results := make([]Result, 0, len(batch))
	for _, item := range batch {
		if item == "" {
			results = append(results, Result{})
			continue
		}
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Err: err})
			continue
		}
		text, err := c.provider.Translate(ctx, item, targetCode)
		if err != nil {
			results = append(results, Result{Err: err})
			continue
		}
		results = append(results, Result{Text: text})
	}
	return results
}

func (c *Chunker) advance() {
	if c.tracker != nil {
		c.tracker.Advance()
	}
}

// pause applies the inter-batch delay after every batch that attempted a
// remote call.
func (c *Chunker) pause(ctx context.Context) {
	if c.delay == 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(c.delay):
	}
}

// cleanBatch replaces blank and whitespace-only entries with empty strings
// so the provider never sees junk values.
func cleanBatch(batch []string) []string {
	clean := make([]string, len(batch))
	for i, v := range batch {
		if strings.TrimSpace(v) == "" {
			clean[i] = ""
		} else {
			clean[i] = v
		}
	}
	return clean
}

func allEmpty(batch []string) bool {
	for _, v := range batch {
		if v != "" {
			return false
		}
	}
	return true
}
