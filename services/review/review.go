package review

import (
	"fmt"

	reviewRepo "carrental/database/repository/review"
	"carrental/models"

	"github.com/google/uuid"
)

// ReviewService manages customer reviews.
type ReviewService interface {
	// Submit stores a new review.
	Submit(in models.ReviewInput) (*models.Review, error)
	// GetAll returns all reviews, newest first.
	GetAll() ([]models.Review, error)
}

// DefaultReviewService is the production implementation of ReviewService.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

// Submit stores a new review.
func (s *DefaultReviewService) Submit(in models.ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	rev := &models.Review{
		ID:       uuid.New().String(),
		UserName: in.UserName,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// GetAll returns all reviews, newest first.
func (s *DefaultReviewService) GetAll() ([]models.Review, error) {
	return s.Repo.GetAll()
}
