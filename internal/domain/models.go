package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// VendorInfo is the vendor identity block extracted from a document.
// Fields that could not be resolved carry the "N/A" sentinel.
type VendorInfo struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	SIRET     string `json:"siret"`
	VATNumber string `json:"vat_number"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
}

// ClientInfo is the client address block.
type ClientInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
}

// BankInfo is the bank details block.
type BankInfo struct {
	Bank string `json:"bank"`
	IBAN string `json:"iban"`
	BIC  string `json:"bic"`
}

// LineItem is one purchased product on an invoice. Items with a
// non-positive quantity or unit price are dropped before the record
// is finalized and never appear in the output.
type LineItem struct {
	Name       string  `json:"name"`
	Ref        string  `json:"ref"`
	Qty        int     `json:"qty"`
	UnitPrice  float64 `json:"unit_price"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// InvoiceRecord is the structured result of one extraction attempt.
// It is fully populated on construction and immutable afterwards:
// every string field holds either an extracted value or its defined
// fallback, never an absent value.
type InvoiceRecord struct {
	BuyerName    string     `json:"buyer_name"`
	InvoiceRef   string     `json:"invoice_ref"`
	InvoiceDate  time.Time  `json:"invoice_date"`
	Subtotal     float64    `json:"subtotal"`
	Tax          float64    `json:"tax"`
	Total        float64    `json:"total"`
	Items        []LineItem `json:"items"`
	Vendor       VendorInfo `json:"vendor"`
	Client       ClientInfo `json:"client"`
	Bank         BankInfo   `json:"bank"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	PaymentTerms string     `json:"payment_terms"`
	Reference    string     `json:"reference"`
	Notes        string     `json:"notes"`
}

// Usable reports whether the extraction produced enough signal to act
// on: at least one line item and a positive resolved total. Callers
// use this instead of an error to decide whether to proceed.
func (r *InvoiceRecord) Usable() bool {
	return len(r.Items) > 0 && r.Total > 0
}

// ChatSession groups the messages of one conversation.
type ChatSession struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	LastMessage string    `db:"last_message" json:"last_message"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Message is a single chat message within a session.
type Message struct {
	ID           uuid.UUID   `db:"id" json:"id"`
	SessionID    uuid.UUID   `db:"session_id" json:"session_id"`
	Role         MessageRole `db:"role" json:"role"`
	Text         string      `db:"text" json:"text"`
	AttachmentID *uuid.UUID  `db:"attachment_id" json:"attachment_id,omitempty"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// FileAttachment stores an uploaded file alongside its session.
type FileAttachment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	SessionID   uuid.UUID `db:"session_id" json:"session_id"`
	FileName    string    `db:"file_name" json:"file_name"`
	FileType    FileType  `db:"file_type" json:"file_type"`
	ContentType string    `db:"content_type" json:"content_type"`
	FileSize    int64     `db:"file_size" json:"file_size"`
	Data        []byte    `db:"data" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ExtractedRecord is a persisted extraction result: the source text it
// was derived from plus the InvoiceRecord serialized as JSON.
type ExtractedRecord struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	SessionID  uuid.UUID       `db:"session_id" json:"session_id"`
	SourceText string          `db:"source_text" json:"source_text"`
	Data       json.RawMessage `db:"data" json:"data"`
	Usable     bool            `db:"usable" json:"usable"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// Record deserializes the stored InvoiceRecord.
func (e *ExtractedRecord) Record() (*InvoiceRecord, error) {
	var rec InvoiceRecord
	if err := json.Unmarshal(e.Data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
