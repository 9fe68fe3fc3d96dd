package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"revu/internal/domain/ticket"
	"revu/internal/infrastructure/persistence/mappers"
	"revu/internal/infrastructure/persistence/models"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
)

// TicketRepository implements the ticket repository interface backed by gorm
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ctx context.Context, ticketEntity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(ticketEntity)
	if err != nil {
		r.logger.Errorw("failed to map ticket entity to model", "error", err)
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket in database", "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := ticketEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	r.logger.Infow("ticket created successfully", "id", model.ID, "author_id", model.AuthorID)
	return nil
}

// Update updates an existing ticket
func (r *TicketRepository) Update(ctx context.Context, ticketEntity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(ticketEntity)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	// Select("*") forces the moved CreatedAt and cleared fields through.
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").Omit("id").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	return nil
}

// Delete removes a ticket together with its dependent reviews
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.ReviewModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete dependent reviews: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found")
		}
		return nil
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			r.logger.Errorw("failed to delete ticket", "id", id, "error", err)
		}
		return err
	}

	r.logger.Infow("ticket deleted", "id", id)
	return nil
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		r.logger.Errorw("failed to get ticket by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByAuthorIDs retrieves all tickets owned by any of the given users
func (r *TicketRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
	if len(authorIDs) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var ticketModels []*models.TicketModel
	if err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets by authors", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}
