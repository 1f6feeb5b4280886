package model

type WebhookEventType string

const (
	WebhookEventShipmentStatusChanged WebhookEventType = "shipment.status_changed"
	WebhookEventShipmentReceived      WebhookEventType = "shipment.received"
	WebhookEventShipmentDispatched    WebhookEventType = "shipment.dispatched"
	WebhookEventInvoiceCreated        WebhookEventType = "invoice.created"
	WebhookEventBatchCascadeApplied   WebhookEventType = "batch.cascade_applied"
)

type Webhook struct {
	ID        string             `json:"id"`                // Unique ID of a Webhook.
	Version   int64              `json:"version"`           // Version of the Webhook.
	ClientID  string             `json:"client_id"`         // The client this Webhook belongs to.
	Url       string             `json:"url"`               // The URL the WebhookEvent sent to.
	Events    []WebhookEventType `json:"events"`            // List of events to trigger the Webhook.
	Secret    string             `json:"secret,omitempty"`  // Secret used to generate the HMAC-SHA1 signature.
	CreatedAt int64              `json:"created_at"`        // Unix Time (in second) when the Webhook was created.
	CreatedBy string             `json:"created_by"`        // User who created the Webhook.
	UpdatedAt int64              `json:"updated_at"`        // Unix Time (in second) when the Webhook was last updated.
	UpdatedBy string             `json:"updated_by"`        // User who last updated the Webhook.
	Deleted   bool               `json:"deleted,omitempty"` // Whether the Webhook is deleted.
}

type WebhookEvent struct {
	ID        string           `json:"id"`         // ID of the subject of the event, e.g. shipment ID.
	Url       string           `json:"url"`        // The URL the WebhookEvent sent to.
	Type      WebhookEventType `json:"type"`       // Type of the event.
	CreatedAt int64            `json:"created_at"` // Unix Time (in second) when the WebhookEvent was created.
}
