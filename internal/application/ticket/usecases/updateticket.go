package usecases

import (
	"context"
	"time"

	"revu/internal/domain/media"
	"revu/internal/domain/ticket"
	"revu/internal/shared/authorization"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type UpdateTicketCommand struct {
	TicketID    uint
	ActorID     uint
	Title       string
	Description string
	Image       *ImageUpload
}

type UpdateTicketResult struct {
	TicketID     uint
	Title        string
	ImagePath    string
	ImageWarning string
	CreatedAt    time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	normalizer media.Normalizer
	blobs      media.BlobStore
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	normalizer media.Normalizer,
	blobs media.BlobStore,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		normalizer: normalizer,
		blobs:      blobs,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := authorization.RequireOwner(cmd.ActorID, t.AuthorID()); err != nil {
		uc.logger.Warnw("ticket update rejected", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
		return nil, err
	}

	oldImagePath := t.ImagePath()

	warning := ""
	newStoredPath := ""
	if cmd.Image != nil {
		newStoredPath, warning, err = storeNormalizedImage(ctx, uc.normalizer, uc.blobs, cmd.Image, uc.logger)
		if err != nil {
			return nil, err
		}
		if newStoredPath != "" {
			t.AttachImage(newStoredPath)
		}
	}

	title := utils.SanitizeText(cmd.Title)
	description := utils.SanitizeText(cmd.Description)
	if err := t.UpdateDetails(title, description); err != nil {
		if newStoredPath != "" {
			if delErr := uc.blobs.Delete(ctx, newStoredPath); delErr != nil {
				uc.logger.Warnw("failed to remove orphaned image blob", "path", newStoredPath, "error", delErr)
			}
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		if newStoredPath != "" {
			if delErr := uc.blobs.Delete(ctx, newStoredPath); delErr != nil {
				uc.logger.Warnw("failed to remove orphaned image blob", "path", newStoredPath, "error", delErr)
			}
		}
		return nil, err
	}

	// The old blob goes away only after the record durably references the
	// new one; a failure window must never leave the ticket with neither.
	if newStoredPath != "" && oldImagePath != "" && oldImagePath != newStoredPath {
		if err := uc.blobs.Delete(ctx, oldImagePath); err != nil {
			uc.logger.Warnw("failed to delete replaced image blob", "path", oldImagePath, "error", err)
		}
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())

	return &UpdateTicketResult{
		TicketID:     t.ID(),
		Title:        t.Title(),
		ImagePath:    t.ImagePath(),
		ImageWarning: warning,
		CreatedAt:    t.CreatedAt(),
	}, nil
}
