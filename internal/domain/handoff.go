package domain

// Shop is the shop descriptor handed to the discovery/review surfaces.
type Shop struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Image    string  `json:"image,omitempty"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Distance string  `json:"distance"`
}

// EditHandoff is the payload handed to the booking/payment flow when an
// existing appointment is being changed. The flow writes the edit back
// through the store's update operation under the same appointment id.
type EditHandoff struct {
	CartItems            []ServiceItem `json:"cartItems"`
	TotalPrice           int64         `json:"totalPrice"`
	ShopData             Shop          `json:"shopData"`
	InitialDate          string        `json:"initialDate"`
	InitialTime          string        `json:"initialTime"`
	InitialPaymentMethod PaymentMethod `json:"initialPaymentMethod"`
	IsEditing            bool          `json:"isEditing"`
	AppointmentID        string        `json:"appointmentId"`
}

// ReviewHandoff is the payload handed to the review flow after a
// completed visit. Rating and review counts start zeroed.
type ReviewHandoff struct {
	ShopData Shop `json:"shopData"`
}
