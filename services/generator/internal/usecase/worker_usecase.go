package usecase

import (
	"context"
	"fmt"
	"sync"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/generator/internal/entity"
	"wallpaperverse/services/generator/internal/materializer"
	"wallpaperverse/services/generator/internal/provider"
	"wallpaperverse/services/generator/internal/repo/persistent"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "generator_jobs_processed_total",
		Help: "Generation jobs moved to a terminal status, by outcome.",
	}, []string{"outcome"})

	jobsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generator_jobs_skipped_total",
		Help: "Queued jobs another worker claimed first.",
	})

	refundsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "generator_refunds_issued_total",
		Help: "Credit refunds issued for failed jobs.",
	})
)

type WorkerUseCase interface {
	ProcessBatch(ctx context.Context) (int, error)
}

type workerUseCase struct {
	genRepo         persistent.GenerationRepository
	ledgerRepo      persistent.LedgerRepository
	registry        *provider.Registry
	materializer    *materializer.Materializer
	providerName    string
	batchSize       int
	refundOnFailure bool
	logger          *logger.Logger
}

func NewWorkerUseCase(
	genRepo persistent.GenerationRepository,
	ledgerRepo persistent.LedgerRepository,
	registry *provider.Registry,
	mat *materializer.Materializer,
	providerName string,
	batchSize int,
	refundOnFailure bool,
	logger *logger.Logger,
) WorkerUseCase {
	return &workerUseCase{
		genRepo:         genRepo,
		ledgerRepo:      ledgerRepo,
		registry:        registry,
		materializer:    mat,
		providerName:    providerName,
		batchSize:       batchSize,
		refundOnFailure: refundOnFailure,
		logger:          logger,
	}
}

// ProcessBatch drains up to batchSize queued jobs, oldest first. Each job
// is claimed with a conditional status flip, so concurrent batch runs
// never process the same job twice. Claimed jobs run in parallel and
// always reach a terminal status: a failure anywhere marks the job
// failed rather than leaving it running.
func (uc *workerUseCase) ProcessBatch(ctx context.Context) (int, error) {
	prov, err := uc.registry.Get(uc.providerName)
	if err != nil {
		return 0, err
	}

	jobs, err := uc.genRepo.ListQueued(uc.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list queued jobs: %w", err)
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	processed := 0
	for _, job := range jobs {
		claimed, err := uc.genRepo.Claim(job.ID)
		if err != nil {
			uc.logger.Error("Failed to claim job %s: %v", job.ID, err)
			continue
		}
		if !claimed {
			jobsSkipped.Inc()
			continue
		}

		processed++
		wg.Add(1)
		go func(job *entity.Generation) {
			defer wg.Done()
			uc.processJob(ctx, prov, job)
		}(job)
	}
	wg.Wait()

	uc.logger.Info("Worker batch done: %d of %d jobs processed", processed, len(jobs))
	return processed, nil
}

func (uc *workerUseCase) processJob(ctx context.Context, prov provider.Provider, job *entity.Generation) {
	dims := entity.AspectDimensions(job.Style.Aspect)

	handle, err := prov.Generate(ctx, provider.Request{
		Prompt:      job.Prompt,
		StylePreset: job.Style.StylePreset,
		Chromatic:   job.Style.Chromatic,
		Width:       dims.Width,
		Height:      dims.Height,
	})
	if err != nil {
		uc.fail(job, fmt.Errorf("provider: %w", err))
		return
	}

	data, err := uc.materializer.Resolve(ctx, handle)
	if err != nil {
		uc.fail(job, fmt.Errorf("resolve: %w", err))
		return
	}

	originalPath, err := uc.materializer.PersistOriginal(job.UserID, job.ID, data)
	if err != nil {
		uc.fail(job, fmt.Errorf("persist original: %w", err))
		return
	}

	thumbnailPath, err := uc.materializer.PersistThumbnail(job.UserID, job.ID)
	if err != nil {
		// Don't leave an orphaned original behind a failed job.
		if derr := uc.materializer.DiscardOriginal(job.UserID, job.ID); derr != nil {
			uc.logger.Error("Failed to discard original for job %s: %v", job.ID, derr)
		}
		uc.fail(job, fmt.Errorf("persist thumbnail: %w", err))
		return
	}

	if err := uc.genRepo.MarkSucceeded(job.ID, originalPath, thumbnailPath); err != nil {
		uc.logger.Error("Failed to mark job %s succeeded: %v", job.ID, err)
		return
	}

	jobsProcessed.WithLabelValues("succeeded").Inc()
	uc.logger.Info("Generation completed: %s for %s", job.ID, job.UserID)
}

// fail moves the job to its terminal failed status and, when configured,
// returns the credits charged at request time.
func (uc *workerUseCase) fail(job *entity.Generation, cause error) {
	uc.logger.Error("Generation %s failed: %v", job.ID, cause)

	if err := uc.genRepo.MarkFailed(job.ID, cause.Error()); err != nil {
		uc.logger.Error("Failed to mark job %s failed: %v", job.ID, err)
		return
	}
	jobsProcessed.WithLabelValues("failed").Inc()

	if uc.refundOnFailure && job.CreditCost > 0 {
		if err := uc.ledgerRepo.Credit(job.UserID, job.CreditCost, "grant", job.ID); err != nil {
			uc.logger.Error("Failed to refund %d credits for job %s: %v", job.CreditCost, job.ID, err)
			return
		}
		refundsIssued.Inc()
		uc.logger.Info("Refunded %d credits to %s for failed job %s", job.CreditCost, job.UserID, job.ID)
	}
}
