package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

// Export kinds accepted by the export endpoint.
const (
	ExportDialectData             = "dialect_data"
	ExportPlausibilityData        = "plausibility_data"
	ExportDialectEvaluations      = "dialect_evaluations"
	ExportPlausibilityEvaluations = "plausibility_evaluations"
	ExportAll                     = "all"
)

type ExportService interface {
	// Export serializes one record kind (or all four) to a downloadable
	// JSON document and returns its filename.
	Export(ctx context.Context, kind string) (filename string, payload []byte, err error)
}

type exportService struct {
	db           *gorm.DB
	log          *logger.Logger
	pairRepo     repos.DialectPairRepo
	itemRepo     repos.PlausibilityItemRepo
	dialectEvals repos.DialectEvaluationRepo
	plausEvals   repos.PlausibilityEvaluationRepo
}

func NewExportService(
	db *gorm.DB,
	log *logger.Logger,
	pairRepo repos.DialectPairRepo,
	itemRepo repos.PlausibilityItemRepo,
	dialectEvals repos.DialectEvaluationRepo,
	plausEvals repos.PlausibilityEvaluationRepo,
) ExportService {
	return &exportService{
		db:           db,
		log:          log.With("service", "ExportService"),
		pairRepo:     pairRepo,
		itemRepo:     itemRepo,
		dialectEvals: dialectEvals,
		plausEvals:   plausEvals,
	}
}

func (s *exportService) Export(ctx context.Context, kind string) (string, []byte, error) {
	var doc any
	switch kind {
	case ExportDialectData:
		rows, err := s.pairRepo.GetAll(ctx, nil)
		if err != nil {
			return "", nil, fmt.Errorf("load dialect data: %w", err)
		}
		doc = rows
	case ExportPlausibilityData:
		rows, err := s.itemRepo.GetAll(ctx, nil)
		if err != nil {
			return "", nil, fmt.Errorf("load plausibility data: %w", err)
		}
		doc = rows
	case ExportDialectEvaluations:
		rows, err := s.dialectEvals.GetAll(ctx, nil)
		if err != nil {
			return "", nil, fmt.Errorf("load dialect evaluations: %w", err)
		}
		doc = rows
	case ExportPlausibilityEvaluations:
		rows, err := s.plausEvals.GetAll(ctx, nil)
		if err != nil {
			return "", nil, fmt.Errorf("load plausibility evaluations: %w", err)
		}
		doc = rows
	case ExportAll:
		all, err := s.exportAll(ctx)
		if err != nil {
			return "", nil, err
		}
		doc = all
	default:
		return "", nil, fmt.Errorf("%w: unknown export type %q", ErrValidation, kind)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("marshal export: %w", err)
	}

	filename := kind + ".json"
	if kind == ExportAll {
		filename = "all_evaluation_data.json"
	}
	s.log.Info("Export generated", "type", kind, "bytes", len(payload))
	return filename, payload, nil
}

func (s *exportService) exportAll(ctx context.Context) (map[string]any, error) {
	pairs, err := s.pairRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load dialect data: %w", err)
	}
	items, err := s.itemRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load plausibility data: %w", err)
	}
	dialectEvals, err := s.dialectEvals.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load dialect evaluations: %w", err)
	}
	plausEvals, err := s.plausEvals.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load plausibility evaluations: %w", err)
	}
	return map[string]any{
		"dialect_data":             pairs,
		"plausibility_data":        items,
		"dialect_evaluations":      dialectEvals,
		"plausibility_evaluations": plausEvals,
	}, nil
}
