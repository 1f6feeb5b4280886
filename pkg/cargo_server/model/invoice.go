package model

type InvoiceStatus string

const (
	InvoiceStatusUnpaid   InvoiceStatus = "UNPAID"
	InvoiceStatusPaid     InvoiceStatus = "PAID"
	InvoiceStatusArchived InvoiceStatus = "ARCHIVED"
)

// Invoice is the financial record of a shipment. At most one invoice with a
// non empty ShipmentID may exist per shipment; the persistence layer enforces
// this with a uniqueness constraint.
type Invoice struct {
	ID         string        `json:"id"`                    // Unique ID of the Invoice.
	Version    int64         `json:"version"`               // Version of the Invoice.
	Number     string        `json:"number"`                // Derived from the shipment track number, e.g. "INV-7890S0002".
	ShipmentID string        `json:"shipment_id,omitempty"` // The shipment this invoice bills, if any.
	Amount     Decimal       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	DueAt      int64         `json:"due_at"` // Unix Time (in second); creation time + 30 days.

	CreatedAt int64  `json:"created_at"`
	CreatedBy string `json:"created_by"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}
