package usecases

import (
	"context"

	"revu/internal/domain/media"
	"revu/internal/domain/ticket"
	"revu/internal/shared/authorization"
	"revu/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	blobs      media.BlobStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	blobs media.BlobStore,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		blobs:      blobs,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := authorization.RequireOwner(cmd.ActorID, t.AuthorID()); err != nil {
		uc.logger.Warnw("ticket deletion rejected", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)
		return err
	}

	// The stored image goes first, then reviews and the record.
	if t.ImagePath() != "" {
		if err := uc.blobs.Delete(ctx, t.ImagePath()); err != nil {
			uc.logger.Warnw("failed to delete ticket image blob", "path", t.ImagePath(), "error", err)
		}
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
