package repository

import (
	"context"

	bolt "go.etcd.io/bbolt"

	"bookbarber/internal/domain"
)

type Repositories struct {
	Appointment AppointmentRepository
}

func NewRepositories(db *bolt.DB) *Repositories {
	return &Repositories{
		Appointment: NewAppointmentRepository(db),
	}
}

// AppointmentRepository mirrors the full appointment collection to
// durable storage. The collection itself lives in memory; the mirror is
// rewritten after every mutation.
type AppointmentRepository interface {
	// Load returns the persisted collection. A nil slice with nil error
	// means nothing has been persisted yet; a decode error means the
	// persisted content is malformed.
	Load(ctx context.Context) ([]domain.Appointment, error)
	Save(ctx context.Context, appointments []domain.Appointment) error
}
