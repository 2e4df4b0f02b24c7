package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"github.com/banglanlp/dialect-eval-backend/internal/data/repos"
	"github.com/banglanlp/dialect-eval-backend/internal/domain"
	"github.com/banglanlp/dialect-eval-backend/internal/platform/logger"
)

// SampleSize is how many items one evaluation round presents.
const SampleSize = 10

type SamplingService interface {
	// SampleDialect returns exactly SampleSize pairs for the dialect,
	// uniformly at random without replacement.
	SampleDialect(ctx context.Context, dialect string) ([]*domain.DialectPair, error)
	// SamplePlausibility returns min(SampleSize, total) items, uniformly
	// at random without replacement.
	SamplePlausibility(ctx context.Context) ([]*domain.PlausibilityItem, error)
}

type samplingService struct {
	db        *gorm.DB
	log       *logger.Logger
	pairRepo  repos.DialectPairRepo
	itemRepo  repos.PlausibilityItemRepo
}

func NewSamplingService(
	db *gorm.DB,
	log *logger.Logger,
	pairRepo repos.DialectPairRepo,
	itemRepo repos.PlausibilityItemRepo,
) SamplingService {
	return &samplingService{
		db:       db,
		log:      log.With("service", "SamplingService"),
		pairRepo: pairRepo,
		itemRepo: itemRepo,
	}
}

func (s *samplingService) SampleDialect(ctx context.Context, dialect string) ([]*domain.DialectPair, error) {
	dialect = strings.TrimSpace(dialect)
	if dialect == "" {
		return nil, fmt.Errorf("%w: no dialect specified", ErrValidation)
	}

	pairs, err := s.pairRepo.GetByDialect(ctx, nil, dialect)
	if err != nil {
		return nil, fmt.Errorf("load dialect pairs: %w", err)
	}
	if len(pairs) < SampleSize {
		return nil, fmt.Errorf("%w: not enough data for %s: found %d items, need at least %d",
			ErrInsufficientData, dialect, len(pairs), SampleSize)
	}

	sampled := samplePairs(pairs, SampleSize)
	s.log.Debug("Sampled dialect pairs", "dialect", dialect, "total", len(pairs), "sampled", len(sampled))
	return sampled, nil
}

func (s *samplingService) SamplePlausibility(ctx context.Context) ([]*domain.PlausibilityItem, error) {
	items, err := s.itemRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load plausibility items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no plausibility data available", ErrNoData)
	}

	n := SampleSize
	if len(items) < n {
		n = len(items)
	}
	sampled := sampleItems(items, n)
	s.log.Debug("Sampled plausibility items", "total", len(items), "sampled", len(sampled))
	return sampled, nil
}

func samplePairs(pairs []*domain.DialectPair, n int) []*domain.DialectPair {
	shuffled := make([]*domain.DialectPair, len(pairs))
	copy(shuffled, pairs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func sampleItems(items []*domain.PlausibilityItem, n int) []*domain.PlausibilityItem {
	shuffled := make([]*domain.PlausibilityItem, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
