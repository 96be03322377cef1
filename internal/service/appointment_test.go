package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"bookbarber/internal/domain"
)

type memoryRepo struct {
	stored  []domain.Appointment
	loadErr error
	saveErr error
	saves   int
}

func (r *memoryRepo) Load(_ context.Context) ([]domain.Appointment, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.stored, nil
}

func (r *memoryRepo) Save(_ context.Context, appointments []domain.Appointment) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = append([]domain.Appointment(nil), appointments...)
	return nil
}

func newTestService(t *testing.T, stored []domain.Appointment) (*AppointmentServiceImpl, *memoryRepo) {
	t.Helper()
	repo := &memoryRepo{stored: stored}
	return NewAppointmentService(repo, zap.NewNop()), repo
}

func testAppointment(id string, status domain.AppointmentStatus, createdAt time.Time) domain.Appointment {
	return domain.Appointment{
		ID:         id,
		Date:       "Mar 20, 2025",
		Time:       "10:30 AM",
		BarberShop: "4Rau Barbershop",
		Address:    "Vinhomes Grand Park Quận 9 - Tòa S503.2P HCM",
		Services:   "Cắt mẫu undercut",
		RemindMe:   true,
		Status:     status,
		CreatedAt:  createdAt,
	}
}

func TestSeedFallback(t *testing.T) {
	cases := []struct {
		name string
		repo *memoryRepo
	}{
		{name: "nothing persisted", repo: &memoryRepo{}},
		{name: "malformed persisted content", repo: &memoryRepo{loadErr: errors.New("decoding persisted appointments: invalid character")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewAppointmentService(tc.repo, zap.NewNop())

			appointments := s.List(context.Background())
			if len(appointments) != 2 {
				t.Fatalf("expected 2 seed appointments, got %d", len(appointments))
			}
			if appointments[0].Status != domain.AppointmentStatusUpcoming {
				t.Errorf("first seed appointment status = %s, want upcoming", appointments[0].Status)
			}
			if appointments[1].Status != domain.AppointmentStatusCompleted {
				t.Errorf("second seed appointment status = %s, want completed", appointments[1].Status)
			}
			if len(appointments[0].ServicesDetail) == 0 || appointments[0].TotalAmount == nil {
				t.Errorf("seed appointment must carry structured services and a total")
			}
			if tc.repo.saves == 0 {
				t.Errorf("seed collection was not persisted")
			}
		})
	}
}

func TestSeedNotUsedForEmptyCollection(t *testing.T) {
	s, _ := newTestService(t, []domain.Appointment{})

	if got := len(s.List(context.Background())); got != 0 {
		t.Fatalf("persisted empty collection must stay empty, got %d appointments", got)
	}
}

func TestIngestNewBooking(t *testing.T) {
	s, repo := newTestService(t, []domain.Appointment{})
	ctx := context.Background()

	total := int64(200000)
	appointment, err := s.IngestNewBooking(ctx, domain.BookingPayload{
		Date: "Apr 2, 2025",
		Time: "3:00 PM",
		Services: []domain.ServiceItem{
			{Name: "Cắt", PriceValue: 150000, Duration: "45 phút", Quantity: 1},
			{Name: "Cạo", PriceValue: 50000, Duration: "20 phút", Quantity: 1},
		},
		TotalAmount:           &total,
		SelectedPaymentMethod: domain.PaymentMethodMoMo,
	})
	if err != nil {
		t.Fatalf("IngestNewBooking returned error: %v", err)
	}

	if appointment.ID == "" {
		t.Errorf("ingested appointment has no id")
	}
	if appointment.Status != domain.AppointmentStatusUpcoming {
		t.Errorf("status = %s, want upcoming", appointment.Status)
	}
	if !appointment.RemindMe {
		t.Errorf("remindMe must default to true")
	}
	if appointment.Services != "Cắt, Cạo" {
		t.Errorf("services summary = %q, want %q", appointment.Services, "Cắt, Cạo")
	}
	if appointment.BarberShop != defaultShopName || appointment.Address != defaultShopAddress {
		t.Errorf("missing shop must fall back to the default identity, got %q / %q", appointment.BarberShop, appointment.Address)
	}

	minutes, ok := s.TotalDuration(*appointment)
	if !ok || minutes != 65 {
		t.Errorf("TotalDuration = %d (determined=%v), want 65", minutes, ok)
	}

	listed := s.List(ctx)
	if len(listed) != 1 || listed[0].ID != appointment.ID {
		t.Fatalf("ingested appointment was not prepended to the collection")
	}
	if repo.saves == 0 {
		t.Errorf("ingestion did not persist the collection")
	}
}

func TestIngestQuantitySummary(t *testing.T) {
	s, _ := newTestService(t, []domain.Appointment{})

	appointment, err := s.IngestNewBooking(context.Background(), domain.BookingPayload{
		Date: "Apr 2, 2025",
		Services: []domain.ServiceItem{
			{Name: "Cạo mặt", Duration: "20 phút", Quantity: 2},
			{Name: "Xả tóc", Duration: "15 phút"}, // quantity omitted, defaults to 1
		},
	})
	if err != nil {
		t.Fatalf("IngestNewBooking returned error: %v", err)
	}

	if appointment.Services != "Cạo mặt x2, Xả tóc" {
		t.Errorf("services summary = %q, want %q", appointment.Services, "Cạo mặt x2, Xả tóc")
	}
	if appointment.ServicesDetail[1].Quantity != 1 {
		t.Errorf("quantity must default to 1, got %d", appointment.ServicesDetail[1].Quantity)
	}

	minutes, ok := s.TotalDuration(*appointment)
	if !ok || minutes != 55 {
		t.Errorf("TotalDuration = %d (determined=%v), want 55 (20*2 + 15)", minutes, ok)
	}
}

func TestCancelAndRebook(t *testing.T) {
	now := time.Now()
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, now),
		testAppointment("b", domain.AppointmentStatusUpcoming, now),
	})
	ctx := context.Background()

	if err := s.Cancel(ctx, "a"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	canceled := s.ListByStatus(ctx, domain.AppointmentStatusCanceled)
	if len(canceled) != 1 || canceled[0].ID != "a" {
		t.Fatalf("Cancel must move exactly one record to the canceled partition")
	}
	if got := len(s.ListByStatus(ctx, domain.AppointmentStatusUpcoming)); got != 1 {
		t.Fatalf("upcoming partition has %d records after cancel, want 1", got)
	}

	want := testAppointment("a", domain.AppointmentStatusCanceled, now)
	if canceled[0].Date != want.Date || canceled[0].BarberShop != want.BarberShop ||
		canceled[0].Services != want.Services || canceled[0].RemindMe != want.RemindMe {
		t.Errorf("Cancel changed fields other than status: %+v", canceled[0])
	}

	if err := s.Rebook(ctx, "a"); err != nil {
		t.Fatalf("Rebook returned error: %v", err)
	}
	if got := len(s.ListByStatus(ctx, domain.AppointmentStatusUpcoming)); got != 2 {
		t.Fatalf("Rebook did not reverse the cancellation, upcoming has %d records", got)
	}
}

func TestComplete(t *testing.T) {
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, time.Now()),
	})
	ctx := context.Background()

	if err := s.Complete(ctx, "a"); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got := s.ListByStatus(ctx, domain.AppointmentStatusCompleted); len(got) != 1 {
		t.Fatalf("completed partition has %d records, want 1", len(got))
	}
}

func TestToggleReminderIdempotence(t *testing.T) {
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, time.Now()),
	})
	ctx := context.Background()

	first, err := s.ToggleReminder(ctx, "a")
	if err != nil {
		t.Fatalf("ToggleReminder returned error: %v", err)
	}
	if first != false {
		t.Errorf("first toggle = %v, want false", first)
	}

	second, err := s.ToggleReminder(ctx, "a")
	if err != nil {
		t.Fatalf("ToggleReminder returned error: %v", err)
	}
	if second != true {
		t.Errorf("double toggle must restore the original value")
	}
}

func TestMutationOnUnknownID(t *testing.T) {
	s, repo := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, time.Now()),
	})
	ctx := context.Background()
	savesBefore := repo.saves

	if err := s.Cancel(ctx, "does-not-exist"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("Cancel on unknown id: err = %v, want ErrAppointmentNotFound", err)
	}
	if _, err := s.ToggleReminder(ctx, "does-not-exist"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("ToggleReminder on unknown id: err = %v, want ErrAppointmentNotFound", err)
	}
	if _, err := s.Update(ctx, "does-not-exist", domain.UpdateAppointmentDTO{}); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("Update on unknown id: err = %v, want ErrAppointmentNotFound", err)
	}

	if len(s.List(ctx)) != 1 {
		t.Errorf("unknown-id mutation changed the collection")
	}
	if repo.saves != savesBefore {
		t.Errorf("unknown-id mutation persisted the collection")
	}
}

func TestPartitionsAreDisjoint(t *testing.T) {
	now := time.Now()
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, now),
		testAppointment("b", domain.AppointmentStatusCompleted, now),
		testAppointment("c", domain.AppointmentStatusCanceled, now),
		testAppointment("d", domain.AppointmentStatusUpcoming, now),
	})
	ctx := context.Background()

	seen := map[string]int{}
	total := 0
	for _, status := range []domain.AppointmentStatus{
		domain.AppointmentStatusUpcoming,
		domain.AppointmentStatusCompleted,
		domain.AppointmentStatusCanceled,
	} {
		for _, a := range s.ListByStatus(ctx, status) {
			if a.Status != status {
				t.Errorf("appointment %s listed under %s but has status %s", a.ID, status, a.Status)
			}
			seen[a.ID]++
			total++
		}
	}

	if total != len(s.List(ctx)) {
		t.Errorf("partition union has %d records, collection has %d", total, len(s.List(ctx)))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("appointment %s appears in %d partitions", id, count)
		}
	}
}

func TestListByStatusOrdering(t *testing.T) {
	t1 := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("older", domain.AppointmentStatusUpcoming, t1),
		testAppointment("newer", domain.AppointmentStatusUpcoming, t2),
	})

	listed := s.ListByStatus(context.Background(), domain.AppointmentStatusUpcoming)
	if len(listed) != 2 {
		t.Fatalf("expected 2 upcoming appointments, got %d", len(listed))
	}
	if listed[0].ID != "newer" || listed[1].ID != "older" {
		t.Errorf("ordering = [%s %s], want newest first", listed[0].ID, listed[1].ID)
	}
}

func TestListByStatusStableTies(t *testing.T) {
	ts := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("first", domain.AppointmentStatusUpcoming, ts),
		testAppointment("second", domain.AppointmentStatusUpcoming, ts),
	})

	listed := s.ListByStatus(context.Background(), domain.AppointmentStatusUpcoming)
	if listed[0].ID != "first" || listed[1].ID != "second" {
		t.Errorf("equal timestamps must keep collection order, got [%s %s]", listed[0].ID, listed[1].ID)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	createdAt := time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC)
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, createdAt),
	})
	ctx := context.Background()

	date := "May 5, 2025"
	services := []domain.ServiceItem{
		{Name: "Cắt", Duration: "45 phút", Quantity: 2},
	}
	updated, err := s.Update(ctx, "a", domain.UpdateAppointmentDTO{
		Date:           &date,
		ServicesDetail: &services,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.ID != "a" {
		t.Errorf("Update changed the id to %s", updated.ID)
	}
	if !updated.CreatedAt.Equal(createdAt) {
		t.Errorf("Update changed createdAt to %v", updated.CreatedAt)
	}
	if updated.Date != date {
		t.Errorf("Date = %q, want %q", updated.Date, date)
	}
	if updated.Services != "Cắt x2" {
		t.Errorf("summary not recomputed from services detail: %q", updated.Services)
	}
}

func TestTotalDurationUndetermined(t *testing.T) {
	s, _ := newTestService(t, []domain.Appointment{})

	appointment := testAppointment("a", domain.AppointmentStatusUpcoming, time.Now())
	if _, ok := s.TotalDuration(appointment); ok {
		t.Errorf("appointment without structured services must report an undetermined duration")
	}

	appointment.ServicesDetail = []domain.ServiceItem{
		{Name: "Cắt", Duration: "45 phút", Quantity: 1},
		{Name: "Gội", Duration: "không rõ", Quantity: 3}, // unparsable, contributes zero
	}
	minutes, ok := s.TotalDuration(appointment)
	if !ok || minutes != 45 {
		t.Errorf("TotalDuration = %d (determined=%v), want 45", minutes, ok)
	}
}

func TestEditHandoff(t *testing.T) {
	now := time.Now()
	withDetail := testAppointment("a", domain.AppointmentStatusUpcoming, now)
	withDetail.ServicesDetail = []domain.ServiceItem{
		{Name: "Cắt", Price: "150,000 VND", PriceValue: 150000, Duration: "45 phút", Quantity: 1},
	}
	total := int64(150000)
	withDetail.TotalAmount = &total
	withDetail.PaymentMethod = domain.PaymentMethodZaloPay

	plain := testAppointment("b", domain.AppointmentStatusUpcoming, now)
	plain.Services = "Cắt tóc, Cạo mặt"

	s, _ := newTestService(t, []domain.Appointment{withDetail, plain})
	ctx := context.Background()

	handoff, err := s.EditHandoff(ctx, "a")
	if err != nil {
		t.Fatalf("EditHandoff returned error: %v", err)
	}
	if !handoff.IsEditing || handoff.AppointmentID != "a" {
		t.Errorf("handoff must mark editing with the original id: %+v", handoff)
	}
	if handoff.TotalPrice != 150000 || handoff.InitialPaymentMethod != domain.PaymentMethodZaloPay {
		t.Errorf("handoff carries wrong totals: %+v", handoff)
	}
	if len(handoff.CartItems) != 1 || handoff.CartItems[0].Name != "Cắt" {
		t.Errorf("handoff cart must reuse the structured services: %+v", handoff.CartItems)
	}

	fallback, err := s.EditHandoff(ctx, "b")
	if err != nil {
		t.Fatalf("EditHandoff returned error: %v", err)
	}
	if len(fallback.CartItems) != 2 {
		t.Fatalf("fallback cart has %d items, want 2 from the summary string", len(fallback.CartItems))
	}
	if fallback.CartItems[0].Name != "Cắt tóc" || fallback.CartItems[0].PriceValue != 0 {
		t.Errorf("fallback cart item = %+v, want name from summary with zeroed price", fallback.CartItems[0])
	}
	if fallback.InitialPaymentMethod != domain.PaymentMethodCash {
		t.Errorf("missing payment method must default to cash, got %s", fallback.InitialPaymentMethod)
	}
}

func TestReviewHandoff(t *testing.T) {
	s, _ := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusCompleted, time.Now()),
	})

	handoff, err := s.ReviewHandoff(context.Background(), "a")
	if err != nil {
		t.Fatalf("ReviewHandoff returned error: %v", err)
	}
	if handoff.ShopData.Name != "4Rau Barbershop" {
		t.Errorf("shop name = %q", handoff.ShopData.Name)
	}
	if handoff.ShopData.Rating != 0 || handoff.ShopData.Reviews != 0 || handoff.ShopData.Distance != "" {
		t.Errorf("review handoff must start with zeroed rating fields: %+v", handoff.ShopData)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	s, repo := newTestService(t, []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, time.Now()),
	})
	ctx := context.Background()

	before := repo.saves
	if _, err := s.IngestNewBooking(ctx, domain.BookingPayload{Date: "Apr 2, 2025"}); err != nil {
		t.Fatalf("IngestNewBooking: %v", err)
	}
	if err := s.Cancel(ctx, "a"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := s.Rebook(ctx, "a"); err != nil {
		t.Fatalf("Rebook: %v", err)
	}
	if _, err := s.ToggleReminder(ctx, "a"); err != nil {
		t.Fatalf("ToggleReminder: %v", err)
	}
	if _, err := s.Update(ctx, "a", domain.UpdateAppointmentDTO{}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := repo.saves - before; got != 5 {
		t.Errorf("5 mutations produced %d persistence writes", got)
	}
}

func TestPersistFailureDoesNotPropagate(t *testing.T) {
	repo := &memoryRepo{stored: []domain.Appointment{
		testAppointment("a", domain.AppointmentStatusUpcoming, time.Now()),
	}}
	s := NewAppointmentService(repo, zap.NewNop())
	repo.saveErr = errors.New("disk full")

	if err := s.Cancel(context.Background(), "a"); err != nil {
		t.Fatalf("persistence failure must not surface from a mutation, got %v", err)
	}
	if got := s.ListByStatus(context.Background(), domain.AppointmentStatusCanceled); len(got) != 1 {
		t.Errorf("in-memory state must still reflect the mutation")
	}
}
