package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/review"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/constants"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

// ReviewRepository implements the review repository interface backed by gorm
type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
	logger logger.Interface
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB, logger logger.Interface) review.Repository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
		logger: logger,
	}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, reviewEntity *review.Review) error {
	model, err := r.mapper.ToModel(reviewEntity)
	if err != nil {
		r.logger.Errorw("failed to map review entity to model", "error", err)
		return fmt.Errorf("failed to map review entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create review in database", "error", err)
		return fmt.Errorf("failed to create review: %w", err)
	}

	if err := reviewEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set review ID: %w", err)
	}

	r.logger.Infow("review created successfully", "id", model.ID, "ticket_id", model.TicketID)
	return nil
}

// Update updates an existing review
func (r *ReviewRepository) Update(ctx context.Context, reviewEntity *review.Review) error {
	model, err := r.mapper.ToModel(reviewEntity)
	if err != nil {
		return fmt.Errorf("failed to map review entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Select("*").Omit("id").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update review", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("review not found")
	}

	return nil
}

// Delete removes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete review", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("review not found")
	}

	r.logger.Infow("review deleted", "id", id)
	return nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("review not found")
		}
		r.logger.Errorw("failed to get review by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByTicketID retrieves all reviews targeting a ticket
func (r *ReviewRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*review.Review, error) {
	var reviewModels []*models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		r.logger.Errorw("failed to list reviews by ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return r.mapper.ToEntities(reviewModels)
}

// ListByAuthorIDs retrieves all reviews written by any of the given users
func (r *ReviewRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
	if len(authorIDs) == 0 {
		return []*review.Review{}, nil
	}

	var reviewModels []*models.ReviewModel
	if err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		r.logger.Errorw("failed to list reviews by authors", "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return r.mapper.ToEntities(reviewModels)
}

// ListByTicketAuthor retrieves all reviews targeting tickets owned by the
// given user, regardless of who wrote them
func (r *ReviewRepository) ListByTicketAuthor(ctx context.Context, ticketAuthorID uint) ([]*review.Review, error) {
	var reviewModels []*models.ReviewModel
	if err := r.db.WithContext(ctx).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.ticket_id",
			constants.TableTickets, constants.TableTickets, constants.TableReviews)).
		Where(fmt.Sprintf("%s.author_id = ?", constants.TableTickets), ticketAuthorID).
		Order(fmt.Sprintf("%s.created_at DESC", constants.TableReviews)).
		Find(&reviewModels).Error; err != nil {
		r.logger.Errorw("failed to list reviews by ticket author", "ticket_author_id", ticketAuthorID, "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return r.mapper.ToEntities(reviewModels)
}
