package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookbarber/internal/domain"
	"bookbarber/internal/repository"
	"bookbarber/pkg/format"
)

const (
	defaultShopName    = "4Rau Barbershop"
	defaultShopAddress = "Vinhomes Grand Park, Quận 9, HCM"
)

type AppointmentServiceImpl struct {
	repo   repository.AppointmentRepository
	logger *zap.Logger

	mu           sync.Mutex
	appointments []domain.Appointment
}

// NewAppointmentService loads the persisted collection, falling back to
// the seed collection when nothing has been persisted yet or the
// persisted content is malformed. Initialization always ends with a
// usable collection.
func NewAppointmentService(repo repository.AppointmentRepository, logger *zap.Logger) *AppointmentServiceImpl {
	s := &AppointmentServiceImpl{
		repo:   repo,
		logger: logger,
	}

	ctx := context.Background()
	appointments, err := repo.Load(ctx)
	if err != nil {
		logger.Warn("persisted appointments unreadable, falling back to seed data", zap.Error(err))
		appointments = nil
	}
	if appointments == nil {
		appointments = seedAppointments()
		s.appointments = appointments
		s.persist(ctx)
		return s
	}

	s.appointments = appointments
	return s
}

func (s *AppointmentServiceImpl) IngestNewBooking(ctx context.Context, payload domain.BookingPayload) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	services := make([]domain.ServiceItem, len(payload.Services))
	copy(services, payload.Services)
	for i := range services {
		if services[i].Quantity <= 0 {
			services[i].Quantity = 1
		}
	}

	appointment := domain.Appointment{
		ID:             uuid.New().String(),
		Date:           payload.Date,
		Time:           payload.Time,
		BarberShop:     defaultShopName,
		Address:        defaultShopAddress,
		Services:       serviceSummary(services),
		ServicesDetail: services,
		RemindMe:       true,
		Status:         domain.AppointmentStatusUpcoming,
		TotalAmount:    payload.TotalAmount,
		PaymentMethod:  payload.SelectedPaymentMethod,
		CreatedAt:      time.Now(),
	}
	if payload.Shop != nil {
		if payload.Shop.Name != "" {
			appointment.BarberShop = payload.Shop.Name
		}
		if payload.Shop.Address != "" {
			appointment.Address = payload.Shop.Address
		}
		appointment.Image = payload.Shop.Image
	}

	s.appointments = append([]domain.Appointment{appointment}, s.appointments...)
	s.persist(ctx)

	s.logger.Info("booking ingested",
		zap.String("id", appointment.ID),
		zap.String("shop", appointment.BarberShop),
		zap.Int("services", len(appointment.ServicesDetail)))

	return &appointment, nil
}

func (s *AppointmentServiceImpl) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByID(id)
	if idx < 0 {
		return nil, domain.ErrAppointmentNotFound
	}

	appointment := s.appointments[idx]
	return &appointment, nil
}

func (s *AppointmentServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByID(id)
	if idx < 0 {
		s.logger.Warn("appointment to update not found", zap.String("id", id))
		return nil, domain.ErrAppointmentNotFound
	}

	appointment := &s.appointments[idx]
	if dto.Date != nil {
		appointment.Date = *dto.Date
	}
	if dto.Time != nil {
		appointment.Time = *dto.Time
	}
	if dto.BarberShop != nil {
		appointment.BarberShop = *dto.BarberShop
	}
	if dto.Address != nil {
		appointment.Address = *dto.Address
	}
	if dto.ServicesDetail != nil {
		services := make([]domain.ServiceItem, len(*dto.ServicesDetail))
		copy(services, *dto.ServicesDetail)
		for i := range services {
			if services[i].Quantity <= 0 {
				services[i].Quantity = 1
			}
		}
		appointment.ServicesDetail = services
		appointment.Services = serviceSummary(services)
	}
	if dto.Image != nil {
		appointment.Image = *dto.Image
	}
	if dto.TotalAmount != nil {
		appointment.TotalAmount = dto.TotalAmount
	}
	if dto.PaymentMethod != nil {
		appointment.PaymentMethod = *dto.PaymentMethod
	}
	if dto.RemindMe != nil {
		appointment.RemindMe = *dto.RemindMe
	}

	s.persist(ctx)

	updated := *appointment
	return &updated, nil
}

func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.AppointmentStatusCanceled)
}

func (s *AppointmentServiceImpl) Rebook(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.AppointmentStatusUpcoming)
}

func (s *AppointmentServiceImpl) Complete(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.AppointmentStatusCompleted)
}

func (s *AppointmentServiceImpl) ToggleReminder(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByID(id)
	if idx < 0 {
		s.logger.Warn("appointment for reminder toggle not found", zap.String("id", id))
		return false, domain.ErrAppointmentNotFound
	}

	s.appointments[idx].RemindMe = !s.appointments[idx].RemindMe
	s.persist(ctx)

	return s.appointments[idx].RemindMe, nil
}

func (s *AppointmentServiceImpl) List(_ context.Context) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// ListByStatus returns the status partition ordered newest first.
// Ties keep the collection order, so a freshly prepended booking sorts
// ahead of equal-timestamp peers.
func (s *AppointmentServiceImpl) ListByStatus(_ context.Context, status domain.AppointmentStatus) []domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if a.Status == status {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

// TotalDuration sums parsed minutes across the structured service list,
// weighted by quantity. The second return is false when no structured
// list exists and the total is undetermined.
func (s *AppointmentServiceImpl) TotalDuration(appointment domain.Appointment) (int, bool) {
	if len(appointment.ServicesDetail) == 0 {
		return 0, false
	}

	total := 0
	for _, item := range appointment.ServicesDetail {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		total += format.Minutes(item.Duration) * quantity
	}

	return total, true
}

func (s *AppointmentServiceImpl) EditHandoff(ctx context.Context, id string) (*domain.EditHandoff, error) {
	appointment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cart := appointment.ServicesDetail
	if len(cart) == 0 {
		// No structured detail: synthesize a cart from the summary
		// string with undetermined prices.
		for _, name := range strings.Split(appointment.Services, ", ") {
			if name == "" {
				continue
			}
			cart = append(cart, domain.ServiceItem{
				Name:     name,
				Price:    "Giá chưa xác định",
				Duration: "chưa xác định",
				Image:    appointment.Image,
				Quantity: 1,
			})
		}
	}

	total := int64(0)
	if appointment.TotalAmount != nil {
		total = *appointment.TotalAmount
	}

	method := appointment.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodCash
	}

	return &domain.EditHandoff{
		CartItems:            cart,
		TotalPrice:           total,
		ShopData:             shopFromAppointment(appointment, 4.5, 1000, "3 km"),
		InitialDate:          appointment.Date,
		InitialTime:          appointment.Time,
		InitialPaymentMethod: method,
		IsEditing:            true,
		AppointmentID:        appointment.ID,
	}, nil
}

func (s *AppointmentServiceImpl) ReviewHandoff(ctx context.Context, id string) (*domain.ReviewHandoff, error) {
	appointment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.ReviewHandoff{
		ShopData: shopFromAppointment(appointment, 0, 0, ""),
	}, nil
}

func (s *AppointmentServiceImpl) setStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexByID(id)
	if idx < 0 {
		s.logger.Warn("appointment for status change not found",
			zap.String("id", id),
			zap.String("status", string(status)))
		return domain.ErrAppointmentNotFound
	}

	s.appointments[idx].Status = status
	s.persist(ctx)

	return nil
}

func (s *AppointmentServiceImpl) indexByID(id string) int {
	for i, a := range s.appointments {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// persist mirrors the collection to durable storage. Write failures are
// logged, never propagated: the in-memory collection stays the source
// of truth for the session either way.
func (s *AppointmentServiceImpl) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.appointments); err != nil {
		s.logger.Error("persisting appointments", zap.Error(err))
	}
}

// serviceSummary derives the comma-joined display summary from the
// structured list: "Cắt mẫu undercut, Cạo mặt x2".
func serviceSummary(services []domain.ServiceItem) string {
	names := make([]string, 0, len(services))
	for _, item := range services {
		name := item.Name
		if item.Quantity > 1 {
			name = fmt.Sprintf("%s x%d", name, item.Quantity)
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func shopFromAppointment(a *domain.Appointment, rating float64, reviews int, distance string) domain.Shop {
	shopID := 3
	if a.BarberShop == defaultShopName {
		shopID = 2
	}
	return domain.Shop{
		ID:       shopID,
		Name:     a.BarberShop,
		Address:  a.Address,
		Image:    a.Image,
		Rating:   rating,
		Reviews:  reviews,
		Distance: distance,
	}
}
