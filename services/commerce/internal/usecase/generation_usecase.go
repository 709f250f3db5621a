package usecase

import (
	"fmt"
	"strings"

	"wallpaperverse/pkg/logger"
	"wallpaperverse/services/commerce/internal/entity"
	"wallpaperverse/services/commerce/internal/repo/persistent"

	"github.com/google/uuid"
)

const (
	minPromptLength = 3
	maxPromptLength = 1000
)

type GenerationUseCase interface {
	RequestGeneration(userID, prompt, aspect, stylePreset string, chromatic float64) (*entity.Generation, error)
	GetGeneration(genID, userID string) (*entity.Generation, error)
	ListGenerations(userID string, limit, offset int) ([]*entity.Generation, error)
}

type generationUseCase struct {
	genRepo    persistent.GenerationRepository
	ledgerRepo persistent.LedgerRepository
	logger     *logger.Logger
}

func NewGenerationUseCase(
	genRepo persistent.GenerationRepository,
	ledgerRepo persistent.LedgerRepository,
	logger *logger.Logger,
) GenerationUseCase {
	return &generationUseCase{
		genRepo:    genRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// RequestGeneration validates the request, charges the tiered credit cost
// and only then enqueues the job. The debit happens before the job row
// exists, so the system never does unpaid work; a debit failure aborts
// with no job created.
func (uc *generationUseCase) RequestGeneration(userID, prompt, aspect, stylePreset string, chromatic float64) (*entity.Generation, error) {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) < minPromptLength {
		return nil, fmt.Errorf("%w: prompt must be at least %d characters", entity.ErrInvalidArgument, minPromptLength)
	}
	if len(prompt) > maxPromptLength {
		return nil, fmt.Errorf("%w: prompt must be at most %d characters", entity.ErrInvalidArgument, maxPromptLength)
	}
	if !entity.ValidAspect(aspect) {
		return nil, fmt.Errorf("%w: invalid aspect ratio %q", entity.ErrInvalidArgument, aspect)
	}

	if stylePreset == "" {
		stylePreset = "realistic"
	}
	if chromatic == 0 {
		chromatic = 1.0
	}

	creditCost := entity.CreditCost(aspect)
	genID := uuid.New().String()

	if _, err := uc.ledgerRepo.Debit(userID, creditCost, entity.ReasonGeneration, genID); err != nil {
		return nil, err
	}

	gen := &entity.Generation{
		ID:     genID,
		UserID: userID,
		Prompt: prompt,
		Style: entity.GenerationStyle{
			Aspect:      aspect,
			StylePreset: stylePreset,
			Chromatic:   chromatic,
		},
		Status:     entity.GenerationQueued,
		CreditCost: creditCost,
	}
	if err := uc.genRepo.Create(gen); err != nil {
		// Credits were already taken; the audit entry references the job
		// id so the charge can be traced and compensated manually.
		uc.logger.Error("Failed to enqueue generation %s after debit: %v", genID, err)
		return nil, fmt.Errorf("failed to create generation: %w", err)
	}

	uc.logger.Info("Generation requested: %s by %s - %d credits", gen.ID, userID, creditCost)
	return gen, nil
}

func (uc *generationUseCase) GetGeneration(genID, userID string) (*entity.Generation, error) {
	gen, err := uc.genRepo.GetByID(genID)
	if err != nil {
		return nil, err
	}
	if gen.UserID != userID {
		return nil, entity.ErrPermissionDenied
	}
	return gen, nil
}

func (uc *generationUseCase) ListGenerations(userID string, limit, offset int) ([]*entity.Generation, error) {
	gens, err := uc.genRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}
	return gens, nil
}
