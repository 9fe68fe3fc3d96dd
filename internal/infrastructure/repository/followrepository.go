package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/follow"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

// FollowRepository implements the follow repository interface backed by gorm
type FollowRepository struct {
	db     *gorm.DB
	mapper mappers.FollowMapper
	logger logger.Interface
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB, logger logger.Interface) follow.Repository {
	return &FollowRepository{
		db:     db,
		mapper: mappers.NewFollowMapper(),
		logger: logger,
	}
}

// Create inserts a new follow edge. The unique (follower, followed) index
// turns a duplicate insert into a conflict error.
func (r *FollowRepository) Create(ctx context.Context, edge *follow.Edge) error {
	model, err := r.mapper.ToModel(edge)
	if err != nil {
		r.logger.Errorw("failed to map follow edge to model", "error", err)
		return fmt.Errorf("failed to map follow edge: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("follow already exists")
		}
		r.logger.Errorw("failed to create follow edge in database", "error", err)
		return fmt.Errorf("failed to create follow edge: %w", err)
	}

	if err := edge.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set follow edge ID: %w", err)
	}

	r.logger.Infow("follow edge created successfully", "id", model.ID,
		"follower_id", model.FollowerID, "followed_id", model.FollowedID)
	return nil
}

// Delete removes a follow edge by ID
func (r *FollowRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FollowModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete follow edge", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("follow edge not found")
	}

	r.logger.Infow("follow edge deleted", "id", id)
	return nil
}

// GetByID retrieves a follow edge by ID
func (r *FollowRepository) GetByID(ctx context.Context, id uint) (*follow.Edge, error) {
	var model models.FollowModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("follow edge not found")
		}
		r.logger.Errorw("failed to get follow edge by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get follow edge: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByFollower retrieves the edges where userID is the follower
func (r *FollowRepository) ListByFollower(ctx context.Context, userID uint) ([]*follow.Edge, error) {
	var followModels []*models.FollowModel
	if err := r.db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Find(&followModels).Error; err != nil {
		r.logger.Errorw("failed to list follows by follower", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}

	return r.mapper.ToEntities(followModels)
}

// ListByFollowed retrieves the edges where userID is the followed user
func (r *FollowRepository) ListByFollowed(ctx context.Context, userID uint) ([]*follow.Edge, error) {
	var followModels []*models.FollowModel
	if err := r.db.WithContext(ctx).
		Where("followed_id = ?", userID).
		Order("created_at DESC").
		Find(&followModels).Error; err != nil {
		r.logger.Errorw("failed to list follows by followed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}

	return r.mapper.ToEntities(followModels)
}
