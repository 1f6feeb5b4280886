package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrTrackNumberError = errors.New("") // Base error for track number codec
var ErrShipmentError = errors.New("")    // Base error for Shipment
var ErrBatchError = errors.New("")       // Base error for Batch
var ErrInvoiceError = errors.New("")     // Base error for Invoice
var ErrWebhookError = errors.New("")     // Base error for Webhook

// Track number errors
var ErrTrackNumberDecode = fmt.Errorf("track number cannot be decoded%w", ErrTrackNumberError)

// Shipment errors
var ErrShipmentNotFound = fmt.Errorf("shipment not found%w", ErrShipmentError)

// Batch errors
var ErrBatchNotFound = fmt.Errorf("batch not found%w", ErrBatchError)

// Invoice errors
var ErrInvoiceNotFound = fmt.Errorf("invoice not found%w", ErrInvoiceError)
var ErrInvoiceNumberExhausted = fmt.Errorf("invoice number collision retry budget exceeded%w", ErrInvoiceError)

// Webhook errors
var ErrWebhookNotFound = fmt.Errorf("webhook not found%w", ErrWebhookError)
var ErrWebhookUnreachable = fmt.Errorf("webhook unreachable%w", ErrWebhookError)

// ErrorToHttpStatus maps a controller error to the HTTP status code of the
// API response.
func ErrorToHttpStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidParameter), errors.Is(err, ErrTrackNumberDecode):
		return http.StatusBadRequest
	case errors.Is(err, ErrShipmentNotFound),
		errors.Is(err, ErrBatchNotFound),
		errors.Is(err, ErrInvoiceNotFound),
		errors.Is(err, ErrWebhookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvoiceNumberExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
