package webhook

import (
	"fmt"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func ValidateCreateWebhookRequest(req CreateWebhookRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ClientID, validation.Required),
		validation.Field(&req.Events, validation.Required, validation.Each(validation.In(
			model.WebhookEventShipmentStatusChanged,
			model.WebhookEventShipmentReceived,
			model.WebhookEventShipmentDispatched,
			model.WebhookEventInvoiceCreated,
			model.WebhookEventBatchCascadeApplied,
		))),
		validation.Field(&req.Secret, validation.Required),
		validation.Field(&req.Url, validation.Required, is.URL),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateListWebhookRequest(req ListWebhookRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Limit, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateUpdateWebhookRequest(req UpdateWebhookRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ClientID, validation.Required),
		validation.Field(&req.Events, validation.Required, validation.Each(validation.In(
			model.WebhookEventShipmentStatusChanged,
			model.WebhookEventShipmentReceived,
			model.WebhookEventShipmentDispatched,
			model.WebhookEventInvoiceCreated,
			model.WebhookEventBatchCascadeApplied,
		))),
		validation.Field(&req.Secret, validation.Required),
		validation.Field(&req.Url, validation.Required, is.URL),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateDeleteWebhookRequest(req DeleteWebhookRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ClientID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
