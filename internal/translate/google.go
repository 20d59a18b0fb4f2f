package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GoogleConfig holds the configuration for the Google web translation
// endpoint.
type GoogleConfig struct {
	APIURL         string
	Timeout        int    // seconds
	SourceLanguage string // provider source code, "auto" detects
}

// Validate checks the configuration and fills defaults.
func (c *GoogleConfig) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("API URL is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = 30
	}
	if c.SourceLanguage == "" {
		c.SourceLanguage = "auto"
	}
	return nil
}

// GoogleTranslator calls the public Google translate web endpoint.
// Thread-safe for concurrent use.
type GoogleTranslator struct {
	config     GoogleConfig
	httpClient *http.Client
}

var _ Provider = (*GoogleTranslator)(nil)

// NewGoogleTranslator creates a new provider client with the given
// configuration.
func NewGoogleTranslator(config GoogleConfig) (*GoogleTranslator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &GoogleTranslator{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// Translate translates a single text value.
func (g *GoogleTranslator) Translate(ctx context.Context, text string, targetCode string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return g.request(ctx, text, targetCode)
}

// TranslateBatch translates several values in one request by joining them
// with newlines. A response whose line count does not match the input count
// is an error; callers degrade to Translate per item.
func (g *GoogleTranslator) TranslateBatch(ctx context.Context, texts []string, targetCode string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	// Newlines delimit batch entries on the wire, so entries must not carry
	// their own.
	flat := make([]string, len(texts))
	for i, t := range texts {
		flat[i] = strings.ReplaceAll(t, "\n", " ")
	}
	joined := strings.Join(flat, "\n")
	translated, err := g.request(ctx, joined, targetCode)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(translated, "\n")
	if len(parts) != len(texts) {
		return nil, fmt.Errorf("batch response mismatch: sent %d values, got %d", len(texts), len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// request issues one translate call and reassembles the translated segments.
func (g *GoogleTranslator) request(ctx context.Context, text string, targetCode string) (string, error) {
	endpoint, err := url.Parse(g.config.APIURL)
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}
	query := endpoint.Query()
	query.Set("client", "gtx")
	query.Set("sl", g.config.SourceLanguage)
	query.Set("tl", targetCode)
	query.Set("dt", "t")
	endpoint.RawQuery = query.Encode()

	form := url.Values{"q": {text}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation request failed with status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	return parseTranslation(body)
}

// parseTranslation decodes the endpoint's nested-array payload. The first
// element is a list of segments; concatenating each segment's first field
// reconstructs the full translated text, newlines included.
func parseTranslation(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("failed to parse translation segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
