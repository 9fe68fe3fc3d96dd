package usecases

import (
	"context"
	"time"

	"revu/internal/domain/media"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

// ImageWarningMessage is surfaced to the user when an uploaded image cannot
// be processed. The ticket is still saved without an image update.
const ImageWarningMessage = "the uploaded image could not be processed; the ticket was saved without it"

type CreateTicketCommand struct {
	AuthorID    uint
	Title       string
	Description string
	Image       *ImageUpload
}

type CreateTicketResult struct {
	TicketID  uint
	Title     string
	ImagePath string
	// ImageWarning is non-empty when image normalization failed and the
	// ticket was saved without an image.
	ImageWarning string
	CreatedAt    time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	normalizer media.Normalizer
	blobs      media.BlobStore
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	normalizer media.Normalizer,
	blobs media.BlobStore,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		normalizer: normalizer,
		blobs:      blobs,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "author_id", cmd.AuthorID, "title", cmd.Title)

	title := utils.SanitizeText(cmd.Title)
	description := utils.SanitizeText(cmd.Description)

	newTicket, err := ticket.NewTicket(title, description, cmd.AuthorID)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	warning := ""
	storedPath := ""
	if cmd.Image != nil {
		storedPath, warning, err = storeNormalizedImage(ctx, uc.normalizer, uc.blobs, cmd.Image, uc.logger)
		if err != nil {
			return nil, err
		}
		if storedPath != "" {
			newTicket.AttachImage(storedPath)
		}
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		if storedPath != "" {
			if delErr := uc.blobs.Delete(ctx, storedPath); delErr != nil {
				uc.logger.Warnw("failed to remove orphaned image blob", "path", storedPath, "error", delErr)
			}
		}
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "author_id", cmd.AuthorID)

	return &CreateTicketResult{
		TicketID:     newTicket.ID(),
		Title:        newTicket.Title(),
		ImagePath:    newTicket.ImagePath(),
		ImageWarning: warning,
		CreatedAt:    newTicket.CreatedAt(),
	}, nil
}

// storeNormalizedImage normalizes and stores an upload. Normalization
// failure degrades to a warning; storage failure is a hard error.
func storeNormalizedImage(ctx context.Context, normalizer media.Normalizer, blobs media.BlobStore, upload *ImageUpload, log logger.Interface) (path, warning string, err error) {
	img, err := normalizer.Normalize(upload.Data, upload.Filename)
	if err != nil {
		log.Warnw("image normalization failed", "filename", upload.Filename, "error", err)
		return "", ImageWarningMessage, nil
	}

	path, err = blobs.Save(ctx, img.Name, img.Data)
	if err != nil {
		log.Errorw("failed to store image blob", "name", img.Name, "error", err)
		return "", "", errors.NewInternalError("failed to store ticket image")
	}
	return path, "", nil
}
