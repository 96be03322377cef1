package service

import (
	"context"

	"go.uber.org/zap"

	"bookbarber/config"
	"bookbarber/internal/domain"
	"bookbarber/internal/repository"
	"bookbarber/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	Appointment AppointmentService
	Invoice     InvoiceService
	Asset       AssetService
}

func NewServices(deps Deps) *Services {
	appointment := NewAppointmentService(deps.Repos.Appointment, deps.Logger)
	return &Services{
		Appointment: appointment,
		Invoice:     NewInvoiceService(appointment, deps.Logger),
		Asset:       NewAssetService(deps.FileStorage, deps.Logger),
	}
}

// AppointmentService owns the authoritative appointment collection.
// Every mutation writes the full collection back to durable storage
// before returning.
type AppointmentService interface {
	IngestNewBooking(ctx context.Context, payload domain.BookingPayload) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, id string, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error)
	Cancel(ctx context.Context, id string) error
	Rebook(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	ToggleReminder(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) []domain.Appointment
	ListByStatus(ctx context.Context, status domain.AppointmentStatus) []domain.Appointment
	TotalDuration(appointment domain.Appointment) (int, bool)
	EditHandoff(ctx context.Context, id string) (*domain.EditHandoff, error)
	ReviewHandoff(ctx context.Context, id string) (*domain.ReviewHandoff, error)
}

type InvoiceService interface {
	Build(ctx context.Context, appointmentID string) (*domain.Invoice, error)
	RenderPDF(ctx context.Context, appointmentID string) ([]byte, string, error)
}

type AssetService interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}
