// Package service orchestrates a glossary run: fan the translation workload
// out across languages, merge the results, save the workbook, and apply
// per-column font formatting.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/termglot/termglot/internal/config"
	"github.com/termglot/termglot/internal/fonts"
	"github.com/termglot/termglot/internal/langs"
	"github.com/termglot/termglot/internal/progress"
	"github.com/termglot/termglot/internal/sheet"
	"github.com/termglot/termglot/internal/translate"
	"github.com/termglot/termglot/pkg/log"
)

// TranslationJob is the unit of work handed to one language worker: the
// target language and the source values it translates. Never mutated after
// creation.
type TranslationJob struct {
	Language     langs.Spec
	Words        []string
	Descriptions []string
}

// WorkerResult carries one completed language's two output columns, keyed by
// their own names so merge order cannot corrupt another language's columns.
type WorkerResult struct {
	WordColumn   string
	Words        []translate.Result
	DescrColumn  string
	Descriptions []translate.Result
}

// GlossaryService runs the translate-merge-format pipeline.
type GlossaryService struct {
	cfg      config.Config
	provider translate.Provider
	resolver *fonts.Resolver
	console  io.Writer

	// styleFonts writes resolved families into the saved workbook;
	// swappable in tests.
	styleFonts func(path string, families map[string]string) error
}

// New creates a service. A nil console writer renders progress to stdout.
func New(cfg config.Config, provider translate.Provider, resolver *fonts.Resolver) *GlossaryService {
	return &GlossaryService{
		cfg:        cfg,
		provider:   provider,
		resolver:   resolver,
		console:    os.Stdout,
		styleFonts: sheet.ApplyColumnFonts,
	}
}

// SetConsole redirects progress rendering, mainly for tests.
func (s *GlossaryService) SetConsole(w io.Writer) {
	s.console = w
}

// Run executes one full glossary run for the given target languages. The
// target set excludes the source language; an empty set still copies the
// input through and applies fonts.
func (s *GlossaryService) Run(ctx context.Context, targets []langs.Spec) error {
	source := langs.Source()

	table, err := sheet.Read(s.cfg.Workbook.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read source workbook: %w", err)
	}
	if _, ok := table.Column(source.WordColumn()); !ok {
		return fmt.Errorf("source workbook is missing the %s column", source.WordColumn())
	}
	if _, ok := table.Column(source.DescrColumn()); !ok {
		log.Info("Source column %s missing, synthesizing an empty one", source.DescrColumn())
		table.SetColumn(source.DescrColumn(), make([]string, table.Rows()))
	}

	if len(targets) > 0 {
		s.translateInto(ctx, table, targets)
	}

	log.Info("Saving %s", s.cfg.Workbook.OutputFile)
	if err := sheet.Write(s.cfg.Workbook.OutputFile, table); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	// Formatting failures never cost the saved data, only the styling.
	if err := s.applyFonts(table); err != nil {
		log.Warn("Could not apply fonts: %v", err)
	}
	return nil
}

// translateInto runs one worker per target language inside a bounded pool
// and merges completed results into the table in target order.
func (s *GlossaryService) translateInto(ctx context.Context, table *sheet.Table, targets []langs.Spec) {
	source := langs.Source()
	words := table.Values(source.WordColumn())
	descriptions := table.Values(source.DescrColumn())

	total := progress.TotalChunks(table.Rows(), s.cfg.Translate.ChunkSize, len(targets))
	tracker := progress.NewTracker(total, s.console)

	log.Info("Translating %d rows into %d languages...", table.Rows(), len(targets))

	var mu sync.Mutex
	results := make(map[int]WorkerResult, len(targets))

	workers := s.cfg.Translate.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	g := &errgroup.Group{}
	g.SetLimit(workers)
	for _, lang := range targets {
		lang := lang
		job := TranslationJob{Language: lang, Words: words, Descriptions: descriptions}
		g.Go(func() error {
			res, err := s.processJob(ctx, job, tracker)
			if err != nil {
				log.Error("Language %s failed, its columns will be omitted: %v", lang.Name, err)
				return nil
			}
			mu.Lock()
			results[lang.ID] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	tracker.Finish()

	log.Info("Merging translated data columns...")
	for _, lang := range targets {
		res, ok := results[lang.ID]
		if !ok {
			continue
		}
		table.SetColumn(res.WordColumn, renderResults(res.Words))
		table.SetColumn(res.DescrColumn, renderResults(res.Descriptions))
	}
}

// processJob translates one language's word and description streams, batches
// strictly in sequence.
func (s *GlossaryService) processJob(ctx context.Context, job TranslationJob, tracker *progress.Tracker) (WorkerResult, error) {
	chunker := translate.NewChunker(s.provider, s.cfg.Translate.ChunkSize, s.cfg.Translate.RequestDelay, tracker)

	words := chunker.TranslateAll(ctx, job.Words, job.Language.Code)
	if err := ctx.Err(); err != nil {
		return WorkerResult{}, err
	}
	descriptions := chunker.TranslateAll(ctx, job.Descriptions, job.Language.Code)
	if err := ctx.Err(); err != nil {
		return WorkerResult{}, err
	}

	if failed := countFailed(words) + countFailed(descriptions); failed > 0 {
		log.Warn("%d items failed for %s and carry the error placeholder", failed, job.Language.Name)
	}

	return WorkerResult{
		WordColumn:   job.Language.WordColumn(),
		Words:        words,
		DescrColumn:  job.Language.DescrColumn(),
		Descriptions: descriptions,
	}, nil
}

// applyFonts resolves a font family per column and styles the saved
// workbook.
func (s *GlossaryService) applyFonts(table *sheet.Table) error {
	families := s.columnFamilies(table)
	if len(families) == 0 {
		return nil
	}

	log.Info("Applying smart font formatting to columns...")
	if err := s.styleFonts(s.cfg.Workbook.OutputFile, families); err != nil {
		return err
	}
	for header, family := range families {
		log.Info("  -> Applied '%s' to column '%s'", family, header)
	}
	return nil
}

// columnFamilies maps column headers to the font family to apply. Columns
// resolve from their header suffix when possible, from detected cell content
// otherwise; the safe fallback family is never applied explicitly.
func (s *GlossaryService) columnFamilies(table *sheet.Table) map[string]string {
	families := make(map[string]string)
	for _, col := range table.Columns {
		ruleKey, ok := langs.RuleKeyForHeader(col.Name)
		if !ok {
			spec, detected := langs.DetectSpec(col.Values)
			if !detected {
				continue
			}
			ruleKey = spec.RuleKey()
		}

		family := s.resolver.Resolve(ruleKey)
		if family == fonts.FallbackFamily {
			continue
		}
		families[col.Name] = family
	}
	return families
}

func renderResults(results []translate.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Output()
	}
	return out
}

func countFailed(results []translate.Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}
