package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"bookbarber/internal/domain"
)

func openTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "bookbarber.db"), 0o600, nil)
	if err != nil {
		t.Fatalf("opening bolt database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadNothingPersisted(t *testing.T) {
	repo := NewAppointmentRepository(openTestDB(t))

	appointments, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if appointments != nil {
		t.Fatalf("fresh database must load as nil, got %d appointments", len(appointments))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := NewAppointmentRepository(openTestDB(t))
	ctx := context.Background()

	total := int64(230000)
	in := []domain.Appointment{
		{
			ID:         "1",
			Date:       "Mar 20, 2025",
			Time:       "10:30 AM",
			BarberShop: "4Rau Barbershop",
			Address:    "Vinhomes Grand Park Quận 9 - Tòa S503.2P HCM",
			Services:   "Cắt mẫu undercut, Cạo mặt",
			ServicesDetail: []domain.ServiceItem{
				{Name: "Cắt mẫu undercut", Price: "150,000 VND", PriceValue: 150000, Duration: "45 phút", Quantity: 1},
				{Name: "Cạo mặt", Price: "50,000 VND", PriceValue: 50000, Duration: "20 phút", Quantity: 2},
			},
			RemindMe:      true,
			Status:        domain.AppointmentStatusUpcoming,
			TotalAmount:   &total,
			PaymentMethod: domain.PaymentMethodZaloPay,
			CreatedAt:     time.Date(2025, time.March, 19, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			Date:       "Dec 22, 2024",
			BarberShop: "The Gentlemen's Den",
			Address:    "634 Điện Biên Phủ, Phường 11, Quận 10",
			Services:   "Undercut Haircut",
			Status:     domain.AppointmentStatusCompleted,
			CreatedAt:  time.Date(2024, time.December, 22, 0, 0, 0, 0, time.UTC),
		},
	}

	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("loaded %d appointments, want 2", len(out))
	}

	got, want := out[0], in[0]
	if got.ID != want.ID || got.BarberShop != want.BarberShop || got.Services != want.Services {
		t.Errorf("round trip changed identity fields: %+v", got)
	}
	if len(got.ServicesDetail) != 2 || got.ServicesDetail[1].Quantity != 2 {
		t.Errorf("round trip changed service detail: %+v", got.ServicesDetail)
	}
	if got.TotalAmount == nil || *got.TotalAmount != total {
		t.Errorf("round trip changed total amount: %v", got.TotalAmount)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("round trip changed createdAt: %v", got.CreatedAt)
	}
	if out[1].TotalAmount != nil {
		t.Errorf("absent total amount must stay nil after round trip")
	}
}

func TestSaveOverwrites(t *testing.T) {
	repo := NewAppointmentRepository(openTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, []domain.Appointment{{ID: "1"}, {ID: "2"}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := repo.Save(ctx, []domain.Appointment{{ID: "3"}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "3" {
		t.Fatalf("second save must replace the collection, got %+v", out)
	}
}

func TestLoadMalformedContent(t *testing.T) {
	db := openTestDB(t)
	repo := NewAppointmentRepository(db)

	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(appointmentsBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(collectionKey), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("seeding malformed content: %v", err)
	}

	if _, err := repo.Load(context.Background()); err == nil {
		t.Fatalf("Load must report malformed persisted content")
	}
}
