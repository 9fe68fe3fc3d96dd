package usecases

import (
	"context"

	ticketusecases "revu/internal/application/ticket/usecases"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/logger"
)

type mockReviewRepository struct {
	CreateFunc             func(ctx context.Context, r *review.Review) error
	UpdateFunc             func(ctx context.Context, r *review.Review) error
	DeleteFunc             func(ctx context.Context, id uint) error
	GetByIDFunc            func(ctx context.Context, id uint) (*review.Review, error)
	ListByTicketIDFunc     func(ctx context.Context, ticketID uint) ([]*review.Review, error)
	ListByAuthorIDsFunc    func(ctx context.Context, authorIDs []uint) ([]*review.Review, error)
	ListByTicketAuthorFunc func(ctx context.Context, ticketAuthorID uint) ([]*review.Review, error)
}

func (m *mockReviewRepository) Create(ctx context.Context, r *review.Review) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id uint) (*review.Review, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*review.Review, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
	if m.ListByAuthorIDsFunc != nil {
		return m.ListByAuthorIDsFunc(ctx, authorIDs)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListByTicketAuthor(ctx context.Context, ticketAuthorID uint) ([]*review.Review, error) {
	if m.ListByTicketAuthorFunc != nil {
		return m.ListByTicketAuthorFunc(ctx, ticketAuthorID)
	}
	return nil, nil
}

type mockTicketRepository struct {
	CreateFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, id uint) error
	GetByIDFunc         func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListByAuthorIDsFunc func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
	if m.ListByAuthorIDsFunc != nil {
		return m.ListByAuthorIDsFunc(ctx, authorIDs)
	}
	return nil, nil
}

type mockCreateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error)

	calls []ticketusecases.CreateTicketCommand
}

func (m *mockCreateTicketExecutor) Execute(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error) {
	m.calls = append(m.calls, cmd)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &ticketusecases.CreateTicketResult{TicketID: 1, Title: cmd.Title}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
