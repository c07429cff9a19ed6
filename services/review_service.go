package services

import (
	"context"
	"strings"
	"time"

	"nailstudio-backend/models"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"
)

type ReviewService struct {
	store *repository.Store
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

func NewReviewService(store *repository.Store, loc *time.Location) *ReviewService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReviewService{store: store, loc: loc, now: time.Now, newID: utils.GenerateID}
}

type ReviewInput struct {
	ClientName string `json:"clientName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.store.Reviews.List(ctx)
}

// Create publishes a review dated today. A missing rating counts as 5.
func (s *ReviewService) Create(ctx context.Context, in ReviewInput) (*models.Review, error) {
	r := models.Review{
		ClientName: strings.TrimSpace(in.ClientName),
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}
	if r.ClientName == "" || r.Comment == "" {
		return nil, invalid("Por favor, completa tu nombre y tu comentario.")
	}
	if r.Rating == 0 {
		r.Rating = models.DefaultRating
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, invalid("La calificación debe estar entre 1 y 5.")
	}

	id, err := uniqueID(ctx, s.newID, s.store.Reviews.Exists)
	if err != nil {
		return nil, err
	}
	r.ID = id
	r.Date = utils.FormatDate(s.now().In(s.loc))
	r.CreatedAt = s.now().UnixMilli()
	if err := s.store.Reviews.Create(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
