package service

import (
	"context"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/termglot/termglot/internal/langs"
	"github.com/termglot/termglot/pkg/log"
)

// RunnableGlossaryService re-runs the glossary pipeline on a cron schedule
// for unattended operation. Runs are idempotent (the output workbook is
// rewritten each time) and overlapping triggers collapse into one run.
type RunnableGlossaryService struct {
	svc      *GlossaryService
	targets  []langs.Spec
	cronExpr string
	cron     *cron.Cron
}

func NewRunnableGlossaryService(
	svc *GlossaryService,
	targets []langs.Spec,
	cronExpr string,
	c *cron.Cron,
) RunnableGlossaryService {
	return RunnableGlossaryService{
		svc:      svc,
		targets:  targets,
		cronExpr: cronExpr,
		cron:     c,
	}
}

var scheduleGroup singleflight.Group

// Schedule registers the run on the cron instance. The caller starts the
// cron loop.
func (s RunnableGlossaryService) Schedule(ctx context.Context) error {
	log.Info("Scheduling glossary runs: %s", s.cronExpr)

	runFunc := func() {
		_, _, _ = scheduleGroup.Do("run", func() (any, error) {
			if err := s.svc.Run(ctx, s.targets); err != nil {
				log.Error("Scheduled run failed: %v", err)
			}
			return nil, nil
		})
	}
	_, err := s.cron.AddFunc(s.cronExpr, runFunc)
	return err
}
