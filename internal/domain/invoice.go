package domain

// InvoiceParty identifies one side of an invoice.
type InvoiceParty struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	TaxCode string `json:"taxCode,omitempty"`
	Website string `json:"website,omitempty"`
}

// InvoiceLine is one billed service row.
type InvoiceLine struct {
	Name      string `json:"name"`
	Duration  string `json:"duration"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Amount    int64  `json:"amount"`
}

// InvoicePayment describes how the appointment was (or will be) paid.
// Bank fields are only set for bank transfers.
type InvoicePayment struct {
	Method        PaymentMethod `json:"method"`
	MethodLabel   string        `json:"methodLabel"`
	BankName      string        `json:"bankName,omitempty"`
	AccountNumber string        `json:"accountNumber,omitempty"`
	TransactionID string        `json:"transactionId"`
	Paid          bool          `json:"paid"`
}

// Invoice is the generated electronic invoice for one appointment.
// Total is nil when the appointment has no determined amount.
type Invoice struct {
	Number          string            `json:"number"`
	IssueDate       string            `json:"issueDate"`
	DueDate         string            `json:"dueDate"`
	AppointmentTime string            `json:"appointmentTime,omitempty"`
	Status          AppointmentStatus `json:"status"`
	Business        InvoiceParty      `json:"business"`
	Customer        InvoiceParty      `json:"customer"`
	Lines           []InvoiceLine     `json:"lines"`
	TotalDuration   string            `json:"totalDuration"`
	Subtotal        *int64            `json:"subtotal"`
	Discount        int64             `json:"discount"`
	VATPercent      int               `json:"vatPercent"`
	Total           *int64            `json:"total"`
	Payment         InvoicePayment    `json:"payment"`
}
