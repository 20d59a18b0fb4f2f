// Package fontget is a best-effort Noto font downloader. For each required
// file it tries a fixed ladder of known repository URL shapes and writes the
// first one that answers; files already on disk are left alone, so runs are
// idempotent.
package fontget

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/termglot/termglot/pkg/log"
)

// Font names one required file and the lowercase google/fonts folder used by
// the mirror URL shapes.
type Font struct {
	Filename     string
	GoogleFolder string
}

// RequiredFonts is every file the glossary's 30-language list needs, the
// large CJK collection excepted (see CJKFilename).
var RequiredFonts = []Font{
	// Core Latin/Cyrillic, plus the bold face used for headers downstream.
	{"NotoSans-Regular.ttf", "notosans"},
	{"NotoSans-Bold.ttf", "notosans"},
	{"NotoSansLiving-Regular.ttf", "notosans"},

	// South Asian (Indic scripts).
	{"NotoSansDevanagari-Regular.ttf", "notosansdevanagari"},
	{"NotoSansGujarati-Regular.ttf", "notosansgujarati"},
	{"NotoSansGurmukhi-Regular.ttf", "notosansgurmukhi"},
	{"NotoSansBengali-Regular.ttf", "notosansbengali"},
	{"NotoSansTamil-Regular.ttf", "notosanstamil"},
	{"NotoSansTelugu-Regular.ttf", "notosanstelugu"},

	// Southeast Asian.
	{"NotoSansThai-Regular.ttf", "notosansthai"},
	{"NotoSansJavanese-Regular.ttf", "notosansjavanese"},

	// Middle Eastern (RTL).
	{"NotoSansArabic-Regular.ttf", "notosansarabic"},
	{"NotoNastaliqUrdu-Regular.ttf", "notonastaliqurdu"},
}

// CJKFilename is the TrueType collection bundling Simplified, Traditional,
// Japanese and Korean glyphs in one binary.
const CJKFilename = "NotoSansCJK.ttc"

const (
	fetchTimeout    = 10 * time.Second
	cjkFetchTimeout = 120 * time.Second
)

// Downloader fetches the required font set into a directory.
type Downloader struct {
	// BaseURL is the raw-content host, overridable in tests.
	BaseURL string

	client    *http.Client
	cjkClient *http.Client
}

func NewDownloader() *Downloader {
	return &Downloader{
		BaseURL:   "https://raw.githubusercontent.com",
		client:    &http.Client{Timeout: fetchTimeout},
		cjkClient: &http.Client{Timeout: cjkFetchTimeout},
	}
}

// CandidateURLs generates the download locations for one font file, in
// priority order. Different Noto fonts live in different repositories and
// folder layouts, so every plausible shape is listed.
func (d *Downloader) CandidateURLs(f Font) []string {
	// The mega-merge build lives in exactly one place.
	if strings.Contains(f.Filename, "Living") {
		return []string{d.BaseURL + "/notofonts/notofonts.github.io/main/megamerge/" + f.Filename}
	}

	folder := strings.TrimSuffix(f.Filename, "-Regular.ttf")
	folder = strings.TrimSuffix(folder, "-Bold.ttf")

	return []string{
		d.BaseURL + "/notofonts/noto-fonts/main/hinted/ttf/" + folder + "/" + f.Filename,
		d.BaseURL + "/notofonts/noto-fonts/main/unhinted/ttf/" + folder + "/" + f.Filename,
		d.BaseURL + "/notofonts/latin-greek-cyrillic/main/hinted/ttf/" + folder + "/" + f.Filename,
		d.BaseURL + "/notofonts/latin-greek-cyrillic/main/unhinted/ttf/" + folder + "/" + f.Filename,
		d.BaseURL + "/google/fonts/main/ofl/" + f.GoogleFolder + "/static/" + f.Filename,
		d.BaseURL + "/google/fonts/main/ofl/" + f.GoogleFolder + "/" + f.Filename,
	}
}

func (d *Downloader) cjkURL() string {
	return d.BaseURL + "/notofonts/noto-cjk/main/Sans/Variable/OTC/NotoSansCJK-VF.otf.ttc"
}

// FetchAll downloads every missing required font into dir, returning the
// number of font files present in dir afterward. Individual failures are
// logged and skipped; only an unusable destination directory is fatal.
func (d *Downloader) FetchAll(ctx context.Context, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create font directory %s: %w", dir, err)
	}

	for _, f := range RequiredFonts {
		if err := d.fetchFont(ctx, f, dir); err != nil {
			log.Warn("Could not fetch %s: %v", f.Filename, err)
		}
	}
	if err := d.fetchCJK(ctx, dir); err != nil {
		log.Warn("Could not fetch %s: %v", CJKFilename, err)
	}

	return countFonts(dir), nil
}

// fetchFont tries each candidate URL once, in priority order.
func (d *Downloader) fetchFont(ctx context.Context, f Font, dir string) error {
	dest := filepath.Join(dir, f.Filename)
	if _, err := os.Stat(dest); err == nil {
		log.Debug("Skipping %s, already present", f.Filename)
		return nil
	}

	for i, candidate := range d.CandidateURLs(f) {
		if err := d.fetch(ctx, d.client, candidate, dest); err != nil {
			log.Debug("Source #%d failed for %s: %v", i+1, f.Filename, err)
			continue
		}
		log.Info("Downloaded %s from source #%d", f.Filename, i+1)
		return nil
	}
	return fmt.Errorf("no known source had %s", f.Filename)
}

func (d *Downloader) fetchCJK(ctx context.Context, dir string) error {
	dest := filepath.Join(dir, CJKFilename)
	if _, err := os.Stat(dest); err == nil {
		log.Debug("Skipping %s, already present", CJKFilename)
		return nil
	}

	log.Info("Fetching %s (large file)...", CJKFilename)
	return d.fetch(ctx, d.cjkClient, d.cjkURL(), dest)
}

// fetch streams one URL to dest, writing the file only on a 200 response.
func (d *Downloader) fetch(ctx context.Context, client *http.Client, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dest)
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

func countFonts(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".ttf", ".otf", ".ttc":
			count++
		}
	}
	return count
}
