package service

import (
	"context"
	"fmt"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/repository"
	"github.com/alecxander567/Course-Tracker-Api/internal/service/analyzer"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CareerService interface {
	Recommend(ctx context.Context, userID string) (*models.CareerRecommendationResponse, error)
}

type careerService struct {
	subjectRepo repository.SubjectRepository
	logger      zerolog.Logger
}

func NewCareerService(subjectRepo repository.SubjectRepository, logger zerolog.Logger) CareerService {
	return &careerService{
		subjectRepo: subjectRepo,
		logger:      logger,
	}
}

func (s *careerService) Recommend(ctx context.Context, userID string) (*models.CareerRecommendationResponse, error) {
	totals, err := s.subjectRepo.GradeTotalsByCategory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grade totals: %w", err)
	}

	result := analyzer.AnalyzeGrades(totals)

	response := &models.CareerRecommendationResponse{
		HasData:       result.HasData,
		Averages:      make(map[models.Category]decimal.Decimal, len(result.Averages)),
		SubjectCounts: result.Counts,
	}
	for category, avg := range result.Averages {
		response.Averages[category] = avg.Round(2)
	}

	if result.HasData {
		best := result.BestCategory
		career := result.Career
		response.BestCategory = &best
		response.RecommendedCareer = &career

		s.logger.Debug().
			Str("user_id", userID).
			Str("best_category", best.String()).
			Str("career", career).
			Msg("Career recommendation computed")
	}

	return response, nil
}
