package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

// DialectEvaluationInput is one rated dialect pair in a submitted batch.
type DialectEvaluationInput struct {
	DialectDataID     uuid.UUID `json:"dialect_data_id"`
	AccuracyRating    int       `json:"accuracy_rating"`
	NaturalnessRating int       `json:"naturalness_rating"`
	Comments          string    `json:"comments"`
}

// PlausibilityEvaluationInput is one rated MCQ item in a submitted batch.
type PlausibilityEvaluationInput struct {
	PlausibilityDataID  uuid.UUID `json:"plausibility_data_id"`
	Option1Plausibility int       `json:"option_1_plausibility"`
	Option2Plausibility int       `json:"option_2_plausibility"`
	Option3Plausibility int       `json:"option_3_plausibility"`
	Comments            string    `json:"comments"`
}

type SubmitRequest struct {
	SessionID               string                        `json:"session_id"`
	EvaluatorName           string                        `json:"evaluator_name"`
	EvaluatorEmail          string                        `json:"evaluator_email"`
	DialectEvaluations      []DialectEvaluationInput      `json:"dialect_evaluations"`
	PlausibilityEvaluations []PlausibilityEvaluationInput `json:"plausibility_evaluations"`
}

type SubmitResult struct {
	SessionID string
	Message   string
}

type SubmissionService interface {
	// Submit validates and persists one batch of evaluation responses as
	// a single transaction: either every row lands or none do.
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
}

type submissionService struct {
	db             *gorm.DB
	log            *logger.Logger
	pairRepo       repos.DialectPairRepo
	itemRepo       repos.PlausibilityItemRepo
	dialectEvals   repos.DialectEvaluationRepo
	plausEvals     repos.PlausibilityEvaluationRepo
	submissionRepo repos.SubmissionRepo
}

func NewSubmissionService(
	db *gorm.DB,
	log *logger.Logger,
	pairRepo repos.DialectPairRepo,
	itemRepo repos.PlausibilityItemRepo,
	dialectEvals repos.DialectEvaluationRepo,
	plausEvals repos.PlausibilityEvaluationRepo,
	submissionRepo repos.SubmissionRepo,
) SubmissionService {
	return &submissionService{
		db:             db,
		log:            log.With("service", "SubmissionService"),
		pairRepo:       pairRepo,
		itemRepo:       itemRepo,
		dialectEvals:   dialectEvals,
		plausEvals:     plausEvals,
		submissionRepo: submissionRepo,
	}
}

func (s *submissionService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	email := strings.TrimSpace(strings.ToLower(req.EvaluatorEmail))
	name := strings.TrimSpace(req.EvaluatorName)

	if err := validateEntries(req); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if email != "" {
			used, err := s.emailAlreadyUsed(ctx, tx, email)
			if err != nil {
				return err
			}
			if used {
				return fmt.Errorf("%w: an evaluation with email %s already exists", ErrDuplicateSubmission, email)
			}
		}

		// The partial unique index on submission.evaluator_email closes
		// the race two concurrent batches with the same email would
		// otherwise win together.
		if _, err := s.submissionRepo.Create(ctx, tx, &domain.Submission{
			SessionID:      sessionID,
			EvaluatorName:  name,
			EvaluatorEmail: email,
		}); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: an evaluation with email %s already exists", ErrDuplicateSubmission, email)
			}
			return fmt.Errorf("create submission: %w", err)
		}

		if err := s.createDialectEvaluations(ctx, tx, req.DialectEvaluations, name, email, sessionID); err != nil {
			return err
		}
		return s.createPlausibilityEvaluations(ctx, tx, req.PlausibilityEvaluations, name, email, sessionID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Submission accepted",
		"session_id", sessionID,
		"dialect_evaluations", len(req.DialectEvaluations),
		"plausibility_evaluations", len(req.PlausibilityEvaluations),
	)
	return &SubmitResult{
		SessionID: sessionID,
		Message:   "Evaluation submitted successfully!",
	}, nil
}

func (s *submissionService) emailAlreadyUsed(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	if n, err := s.dialectEvals.CountByEmail(ctx, tx, email); err != nil {
		return false, fmt.Errorf("check dialect evaluations: %w", err)
	} else if n > 0 {
		return true, nil
	}
	if n, err := s.plausEvals.CountByEmail(ctx, tx, email); err != nil {
		return false, fmt.Errorf("check plausibility evaluations: %w", err)
	} else if n > 0 {
		return true, nil
	}
	if n, err := s.submissionRepo.CountByEmail(ctx, tx, email); err != nil {
		return false, fmt.Errorf("check submissions: %w", err)
	} else if n > 0 {
		return true, nil
	}
	return false, nil
}

func (s *submissionService) createDialectEvaluations(ctx context.Context, tx *gorm.DB, entries []DialectEvaluationInput, name, email, sessionID string) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.DialectDataID)
	}
	known, err := s.pairRepo.GetByIDs(ctx, tx, ids)
	if err != nil {
		return fmt.Errorf("load dialect pairs: %w", err)
	}
	knownSet := make(map[uuid.UUID]struct{}, len(known))
	for _, p := range known {
		knownSet[p.ID] = struct{}{}
	}

	rows := make([]*domain.DialectEvaluation, 0, len(entries))
	for _, e := range entries {
		if _, ok := knownSet[e.DialectDataID]; !ok {
			return fmt.Errorf("%w: unknown dialect_data_id %s", ErrValidation, e.DialectDataID)
		}
		rows = append(rows, &domain.DialectEvaluation{
			DialectPairID:     e.DialectDataID,
			EvaluatorName:     name,
			EvaluatorEmail:    email,
			AccuracyRating:    e.AccuracyRating,
			NaturalnessRating: e.NaturalnessRating,
			Comments:          e.Comments,
			SessionID:         sessionID,
		})
	}
	if _, err := s.dialectEvals.Create(ctx, tx, rows); err != nil {
		return fmt.Errorf("create dialect evaluations: %w", err)
	}
	return nil
}

func (s *submissionService) createPlausibilityEvaluations(ctx context.Context, tx *gorm.DB, entries []PlausibilityEvaluationInput, name, email, sessionID string) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.PlausibilityDataID)
	}
	known, err := s.itemRepo.GetByIDs(ctx, tx, ids)
	if err != nil {
		return fmt.Errorf("load plausibility items: %w", err)
	}
	knownSet := make(map[uuid.UUID]struct{}, len(known))
	for _, it := range known {
		knownSet[it.ID] = struct{}{}
	}

	rows := make([]*domain.PlausibilityEvaluation, 0, len(entries))
	for _, e := range entries {
		if _, ok := knownSet[e.PlausibilityDataID]; !ok {
			return fmt.Errorf("%w: unknown plausibility_data_id %s", ErrValidation, e.PlausibilityDataID)
		}
		rows = append(rows, &domain.PlausibilityEvaluation{
			PlausibilityItemID:  e.PlausibilityDataID,
			EvaluatorName:       name,
			EvaluatorEmail:      email,
			Option1Plausibility: e.Option1Plausibility,
			Option2Plausibility: e.Option2Plausibility,
			Option3Plausibility: e.Option3Plausibility,
			Comments:            e.Comments,
			SessionID:           sessionID,
		})
	}
	if _, err := s.plausEvals.Create(ctx, tx, rows); err != nil {
		return fmt.Errorf("create plausibility evaluations: %w", err)
	}
	return nil
}

func validateEntries(req SubmitRequest) error {
	for i, e := range req.DialectEvaluations {
		if e.DialectDataID == uuid.Nil {
			return fmt.Errorf("%w: dialect_evaluations[%d]: missing dialect_data_id", ErrValidation, i)
		}
		if err := validateRating("accuracy_rating", e.AccuracyRating); err != nil {
			return fmt.Errorf("dialect_evaluations[%d]: %w", i, err)
		}
		if err := validateRating("naturalness_rating", e.NaturalnessRating); err != nil {
			return fmt.Errorf("dialect_evaluations[%d]: %w", i, err)
		}
	}
	for i, e := range req.PlausibilityEvaluations {
		if e.PlausibilityDataID == uuid.Nil {
			return fmt.Errorf("%w: plausibility_evaluations[%d]: missing plausibility_data_id", ErrValidation, i)
		}
		if err := validateRating("option_1_plausibility", e.Option1Plausibility); err != nil {
			return fmt.Errorf("plausibility_evaluations[%d]: %w", i, err)
		}
		if err := validateRating("option_2_plausibility", e.Option2Plausibility); err != nil {
			return fmt.Errorf("plausibility_evaluations[%d]: %w", i, err)
		}
		if err := validateRating("option_3_plausibility", e.Option3Plausibility); err != nil {
			return fmt.Errorf("plausibility_evaluations[%d]: %w", i, err)
		}
	}
	return nil
}

func validateRating(field string, v int) error {
	if v < domain.RatingMin || v > domain.RatingMax {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d",
			ErrValidation, field, domain.RatingMin, domain.RatingMax, v)
	}
	return nil
}
