package batchops

import (
	"fmt"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateCreateBatchRequest(req CreateBatchRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Mode, validation.Required, validation.In(
			model.DeliveryModeAir,
			model.DeliveryModeSea,
			model.DeliveryModeRail,
			model.DeliveryModeMultimodal,
		)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateFormBatchRequest(req FormBatchRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.Number, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateApplyToBatchRequest(req ApplyToBatchRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.Number, validation.Required),
		validation.Field(&req.Kind, validation.Required, validation.In(
			CascadeKindStatus,
			CascadeKindMarkReceived,
			CascadeKindMarkDispatched,
		)),
		validation.Field(&req.Status, validation.When(req.Kind == CascadeKindStatus, validation.Required)),
		validation.Field(&req.OccurredAt, validation.When(req.Kind != CascadeKindStatus, validation.Required)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
