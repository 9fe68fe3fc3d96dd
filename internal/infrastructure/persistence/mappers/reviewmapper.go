package mappers

import (
	"fmt"

	"revu/internal/domain/review"
	"revu/internal/infrastructure/persistence/models"
)

// ReviewMapper handles the conversion between domain entities and persistence models
type ReviewMapper interface {
	ToEntity(model *models.ReviewModel) (*review.Review, error)
	ToModel(entity *review.Review) (*models.ReviewModel, error)
	ToEntities(models []*models.ReviewModel) ([]*review.Review, error)
}

// ReviewMapperImpl is the concrete implementation of ReviewMapper
type ReviewMapperImpl struct{}

// NewReviewMapper creates a new review mapper
func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToEntity(model *models.ReviewModel) (*review.Review, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := review.ReconstructReview(
		model.ID,
		model.TicketID,
		model.Rating,
		model.Headline,
		model.Body,
		model.AuthorID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct review: %w", err)
	}
	return entity, nil
}

func (m *ReviewMapperImpl) ToModel(entity *review.Review) (*models.ReviewModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ReviewModel{
		ID:        entity.ID(),
		TicketID:  entity.TicketID(),
		Rating:    entity.Rating(),
		Headline:  entity.Headline(),
		Body:      entity.Body(),
		AuthorID:  entity.AuthorID(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *ReviewMapperImpl) ToEntities(reviewModels []*models.ReviewModel) ([]*review.Review, error) {
	entities := make([]*review.Review, 0, len(reviewModels))
	for _, model := range reviewModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
