package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revu/internal/domain/media"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return tk.SetID(10)
		},
	}
	blobs := &mockBlobStore{}

	uc := NewCreateTicketUseCase(mockRepo, &mockNormalizer{}, blobs, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		AuthorID:    1,
		Title:       "Ursula K. Le Guin — worth starting with?",
		Description: "Recommendations welcome",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.TicketID)
	assert.Empty(t, result.ImageWarning)
	assert.Empty(t, result.ImagePath)

	require.NotNil(t, savedTicket)
	assert.Equal(t, uint(1), savedTicket.AuthorID())
	assert.Empty(t, blobs.saved)
}

func TestCreateTicketUseCase_Execute_WithImage(t *testing.T) {
	mockRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(11)
		},
	}
	normalizer := &mockNormalizer{
		NormalizeFunc: func(data []byte, filename string) (*media.Image, error) {
			return &media.Image{Data: []byte("jpeg"), Name: "cover.jpg"}, nil
		},
	}
	blobs := &mockBlobStore{}

	uc := NewCreateTicketUseCase(mockRepo, normalizer, blobs, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		AuthorID: 1,
		Title:    "With cover",
		Image:    &ImageUpload{Data: []byte("png"), Filename: "cover.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "media/cover.jpg", result.ImagePath)
	assert.Empty(t, result.ImageWarning)
	assert.Equal(t, []string{"media/cover.jpg"}, blobs.saved)
}

func TestCreateTicketUseCase_Execute_CorruptImageDegrades(t *testing.T) {
	var savedTicket *ticket.Ticket
	mockRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			savedTicket = tk
			return tk.SetID(12)
		},
	}
	normalizer := &mockNormalizer{
		NormalizeFunc: func(data []byte, filename string) (*media.Image, error) {
			return nil, errors.NewImageProcessingError("cannot decode image")
		},
	}
	blobs := &mockBlobStore{}

	uc := NewCreateTicketUseCase(mockRepo, normalizer, blobs, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		AuthorID: 1,
		Title:    "Still saved",
		Image:    &ImageUpload{Data: []byte("not an image"), Filename: "broken.png"},
	})

	// The ticket is saved anyway, without an image, with a warning.
	require.NoError(t, err)
	assert.Equal(t, ImageWarningMessage, result.ImageWarning)
	assert.Empty(t, result.ImagePath)
	require.NotNil(t, savedTicket)
	assert.Empty(t, savedTicket.ImagePath())
	assert.Empty(t, blobs.saved)
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
		wantErr string
	}{
		{
			name:    "empty title",
			command: CreateTicketCommand{AuthorID: 1, Title: ""},
			wantErr: "title is required",
		},
		{
			name:    "title too long",
			command: CreateTicketCommand{AuthorID: 1, Title: strings.Repeat("a", 129)},
			wantErr: "title exceeds maximum length",
		},
		{
			name:    "html-only title is rejected after sanitization",
			command: CreateTicketCommand{AuthorID: 1, Title: "<script>alert(1)</script>"},
			wantErr: "title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoCalled := false
			mockRepo := &mockTicketRepository{
				CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					repoCalled = true
					return nil
				},
			}

			uc := NewCreateTicketUseCase(mockRepo, &mockNormalizer{}, &mockBlobStore{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.False(t, repoCalled)
		})
	}
}

func TestCreateTicketUseCase_Execute_BlobCleanupOnSaveFailure(t *testing.T) {
	mockRepo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewInternalError("database unavailable")
		},
	}
	normalizer := &mockNormalizer{
		NormalizeFunc: func(data []byte, filename string) (*media.Image, error) {
			return &media.Image{Data: []byte("jpeg"), Name: "cover.jpg"}, nil
		},
	}
	blobs := &mockBlobStore{}

	uc := NewCreateTicketUseCase(mockRepo, normalizer, blobs, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		AuthorID: 1,
		Title:    "doomed",
		Image:    &ImageUpload{Data: []byte("png"), Filename: "cover.png"},
	})

	require.Error(t, err)
	assert.Equal(t, []string{"media/cover.jpg"}, blobs.deleted)
}
