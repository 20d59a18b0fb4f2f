// Package translate talks to the remote translation provider and implements
// the chunked, rate-limited, degrade-on-failure translation of whole
// columns.
package translate

import "context"

// Provider is a remote translation backend. TranslateBatch must return
// exactly one output per input or an error; the chunker relies on that
// contract to decide when to degrade to per-item calls.
type Provider interface {
	Translate(ctx context.Context, text string, targetCode string) (string, error)
	TranslateBatch(ctx context.Context, texts []string, targetCode string) ([]string, error)
}

// ErrorPlaceholder is the visible substitute written into the output for an
// item that could not be translated even on the degraded per-item path.
const ErrorPlaceholder = "[Translation Error]"

// Result is the tagged outcome of translating one value: either a translated
// text or a failure. Keeping the error explicit means a caller can never
// mistake a legitimate translation for a failure marker.
type Result struct {
	Text string
	Err  error
}

// Failed reports whether this item ended in a failure.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Output renders the result for the output table, substituting the visible
// placeholder for failures.
func (r Result) Output() string {
	if r.Err != nil {
		return ErrorPlaceholder
	}
	return r.Text
}
