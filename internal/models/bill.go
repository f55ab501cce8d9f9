package models

import (
	"github.com/shopspring/decimal"
)

// BillStatus is the review state of a bill. Values outside the known set are
// carried through unchanged.
type BillStatus string

const (
	StatusPending  BillStatus = "pending"
	StatusAccepted BillStatus = "accepted"
	StatusRefused  BillStatus = "refused"
)

// DefaultPct is the VAT percentage applied when the form leaves it empty.
const DefaultPct = 20

// Bill is an expense report submitted by an employee.
type Bill struct {
	// ID is the key returned when the receipt was uploaded (UUID format).
	ID string `json:"id"`

	// Email identifies the employee who owns the bill.
	Email string `json:"email"`

	// Type is the expense category (e.g. "Transports", "Restaurants et bars").
	Type string `json:"type"`

	// Name is the free-form expense name.
	Name string `json:"name"`

	// Date is the expense date as YYYY-MM-DD.
	Date string `json:"date"`

	Amount     decimal.Decimal `json:"amount"`
	VAT        string          `json:"vat"`
	Pct        int             `json:"pct"`
	Commentary string          `json:"commentary"`

	Status       BillStatus `json:"status"`
	CommentAdmin string     `json:"commentAdmin"`

	// FileURL points at the uploaded receipt.
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

// DisplayBill is a Bill with Date and Status replaced by their display forms.
type DisplayBill struct {
	Bill
	Date   string `json:"date"`
	Status string `json:"status"`
}

// BillUpload is the multipart-style payload that creates a bill from a receipt.
type BillUpload struct {
	File     []byte
	FileName string
	Email    string
}

// UploadResult is what the store returns for a stored receipt.
type UploadResult struct {
	FilePath string `json:"filePath"`
	FileURL  string `json:"fileUrl"`
	Key      string `json:"key"`
}

// LoginRequest is the serialized credential pair sent to the store.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the token issued by the store, if any.
type LoginResponse struct {
	JWT string `json:"jwt,omitempty"`
}
