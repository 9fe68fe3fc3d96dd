package mappers

import (
	"fmt"

	"revu/internal/domain/follow"
	"revu/internal/infrastructure/persistence/models"
)

// FollowMapper handles the conversion between domain entities and persistence models
type FollowMapper interface {
	ToEntity(model *models.FollowModel) (*follow.Edge, error)
	ToModel(entity *follow.Edge) (*models.FollowModel, error)
	ToEntities(models []*models.FollowModel) ([]*follow.Edge, error)
}

// FollowMapperImpl is the concrete implementation of FollowMapper
type FollowMapperImpl struct{}

// NewFollowMapper creates a new follow mapper
func NewFollowMapper() FollowMapper {
	return &FollowMapperImpl{}
}

func (m *FollowMapperImpl) ToEntity(model *models.FollowModel) (*follow.Edge, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := follow.ReconstructEdge(
		model.ID,
		model.FollowerID,
		model.FollowedID,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct follow edge: %w", err)
	}
	return entity, nil
}

func (m *FollowMapperImpl) ToModel(entity *follow.Edge) (*models.FollowModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.FollowModel{
		ID:         entity.ID(),
		FollowerID: entity.FollowerID(),
		FollowedID: entity.FollowedID(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func (m *FollowMapperImpl) ToEntities(followModels []*models.FollowModel) ([]*follow.Edge, error) {
	entities := make([]*follow.Edge, 0, len(followModels))
	for _, model := range followModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
