package repository

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"bookbarber/internal/domain"
)

const (
	appointmentsBucket = "appointments"
	// collectionKey is the single key holding the JSON-serialized
	// appointment array. There is no versioning scheme; a malformed
	// value is reported to the caller, which falls back to seed data.
	collectionKey = "barberShopAppointments"
)

type AppointmentBoltRepository struct {
	db *bolt.DB
}

func NewAppointmentRepository(db *bolt.DB) *AppointmentBoltRepository {
	return &AppointmentBoltRepository{db: db}
}

func (r *AppointmentBoltRepository) Load(_ context.Context) ([]domain.Appointment, error) {
	var raw []byte
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(appointmentsBucket))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(collectionKey)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading persisted appointments: %w", err)
	}

	if raw == nil {
		return nil, nil
	}

	var appointments []domain.Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		return nil, fmt.Errorf("decoding persisted appointments: %w", err)
	}

	return appointments, nil
}

func (r *AppointmentBoltRepository) Save(_ context.Context, appointments []domain.Appointment) error {
	data, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("encoding appointments: %w", err)
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(appointmentsBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(collectionKey), data)
	})
	if err != nil {
		return fmt.Errorf("writing appointments: %w", err)
	}

	return nil
}
