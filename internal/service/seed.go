package service

import (
	"time"

	"bookbarber/internal/domain"
	"bookbarber/pkg/format"
)

const seedImage = "/assets/barber-shop.jpg"

// seedAppointments is the collection used when nothing has been
// persisted yet or the persisted content cannot be decoded.
func seedAppointments() []domain.Appointment {
	return []domain.Appointment{
		{
			ID:         "1",
			Date:       "Mar 20, 2025",
			Time:       "10:30 AM",
			BarberShop: defaultShopName,
			Address:    "Vinhomes Grand Park Quận 9 - Tòa S503.2P HCM",
			Services:   "Cắt mẫu undercut, Cạo mặt, Xả tóc",
			ServicesDetail: []domain.ServiceItem{
				seedService("Cắt mẫu undercut", 150000, "45 phút"),
				seedService("Cạo mặt", 50000, "20 phút"),
				seedService("Xả tóc", 30000, "15 phút"),
			},
			Image:         seedImage,
			RemindMe:      true,
			Status:        domain.AppointmentStatusUpcoming,
			TotalAmount:   amount(230000),
			PaymentMethod: domain.PaymentMethodZaloPay,
			CreatedAt:     time.Now(),
		},
		{
			ID:         "2",
			Date:       "Dec 22, 2024",
			Time:       "2:15 PM",
			BarberShop: "The Gentlemen's Den",
			Address:    "634 Điện Biên Phủ, Phường 11, Quận 10",
			Services:   "Undercut Haircut, Regular Shaving, Natural Hair Wash",
			ServicesDetail: []domain.ServiceItem{
				seedService("Undercut Haircut", 180000, "50 phút"),
				seedService("Regular Shaving", 80000, "25 phút"),
				seedService("Natural Hair Wash", 40000, "15 phút"),
			},
			Image:         seedImage,
			RemindMe:      false,
			Status:        domain.AppointmentStatusCompleted,
			TotalAmount:   amount(300000),
			PaymentMethod: domain.PaymentMethodBank,
			CreatedAt:     time.Date(2024, time.December, 22, 0, 0, 0, 0, time.Local),
		},
	}
}

func seedService(name string, price int64, duration string) domain.ServiceItem {
	return domain.ServiceItem{
		Name:       name,
		Price:      format.VND(price),
		PriceValue: price,
		Duration:   duration,
		Image:      seedImage,
		Quantity:   1,
	}
}

func amount(v int64) *int64 {
	return &v
}
