package domain

import (
	"errors"
	"time"
)

// ErrAppointmentNotFound is returned by mutations referencing an unknown id.
// The collection is left untouched in that case.
var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusUpcoming, AppointmentStatusCompleted, AppointmentStatusCanceled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodBank    PaymentMethod = "bank"
	PaymentMethodZaloPay PaymentMethod = "zalopay"
	PaymentMethodMoMo    PaymentMethod = "momo"
)

// Label returns the short display name shown on appointment cards.
// Empty or unknown methods read as cash.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodBank:
		return "Ngân hàng"
	case PaymentMethodZaloPay:
		return "ZaloPay"
	case PaymentMethodMoMo:
		return "MoMo"
	default:
		return "Tiền mặt"
	}
}

// InvoiceLabel returns the long form used on invoices.
func (m PaymentMethod) InvoiceLabel() string {
	switch m {
	case PaymentMethodBank:
		return "Chuyển khoản ngân hàng"
	case PaymentMethodZaloPay:
		return "Ví điện tử ZaloPay"
	case PaymentMethodMoMo:
		return "Ví điện tử MoMo"
	default:
		return "Tiền mặt"
	}
}

// ServiceItem is one priced, timed service within an appointment.
// Duration is free-form display text ("45 phút"); minutes are parsed
// out of it when totals are computed.
type ServiceItem struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	PriceValue int64  `json:"priceValue"`
	Duration   string `json:"duration"`
	Image      string `json:"image,omitempty"`
	Quantity   int    `json:"quantity"`
}

// Appointment is one booking record with a lifecycle status. The JSON
// field set matches the persisted collection layout exactly.
type Appointment struct {
	ID             string            `json:"id"`
	Date           string            `json:"date"`
	Time           string            `json:"time,omitempty"`
	BarberShop     string            `json:"barberShop"`
	Address        string            `json:"address"`
	Services       string            `json:"services"`
	ServicesDetail []ServiceItem     `json:"servicesDetail,omitempty"`
	Image          string            `json:"image,omitempty"`
	RemindMe       bool              `json:"remindMe"`
	Status         AppointmentStatus `json:"status"`
	TotalAmount    *int64            `json:"totalAmount,omitempty"`
	PaymentMethod  PaymentMethod     `json:"paymentMethod,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// BookingShop is the shop identity carried by an origination payload.
type BookingShop struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

// BookingPayload is the contract handed over by the booking flow when a
// booking completes. Everything but date is optional at the boundary;
// a missing shop falls back to the default identity.
type BookingPayload struct {
	Date                  string        `json:"date" binding:"required"`
	Time                  string        `json:"time"`
	Shop                  *BookingShop  `json:"shop"`
	Services              []ServiceItem `json:"services"`
	TotalAmount           *int64        `json:"totalAmount"`
	SelectedPaymentMethod PaymentMethod `json:"selectedPaymentMethod" binding:"omitempty,oneof=cash bank zalopay momo"`
}

// UpdateAppointmentDTO carries a partial in-place edit. ID and CreatedAt
// are never touched by an update.
type UpdateAppointmentDTO struct {
	Date           *string        `json:"date"`
	Time           *string        `json:"time"`
	BarberShop     *string        `json:"barberShop"`
	Address        *string        `json:"address"`
	ServicesDetail *[]ServiceItem `json:"servicesDetail"`
	Image          *string        `json:"image"`
	TotalAmount    *int64         `json:"totalAmount"`
	PaymentMethod  *PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=cash bank zalopay momo"`
	RemindMe       *bool          `json:"remindMe"`
}
