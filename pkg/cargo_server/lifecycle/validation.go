package lifecycle

import (
	"fmt"
	"regexp"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var clientCodePattern = regexp.MustCompile(`^\d{4}$`)

func deliveryModes() []interface{} {
	return []interface{}{
		model.DeliveryModeAir,
		model.DeliveryModeSea,
		model.DeliveryModeRail,
		model.DeliveryModeMultimodal,
	}
}

func shipmentStatuses() []interface{} {
	return []interface{}{
		model.ShipmentStatusCreated,
		model.ShipmentStatusReceivedAtOrigin,
		model.ShipmentStatusConsolidation,
		model.ShipmentStatusInTransit,
		model.ShipmentStatusArrivedDestCountry,
		model.ShipmentStatusOnDestWarehouse,
		model.ShipmentStatusDelivered,
		model.ShipmentStatusArchived,
	}
}

func ValidateCreateShipmentRequest(req CreateShipmentRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ClientID, validation.Required),
		validation.Field(&req.ClientCode, validation.Required, validation.Match(clientCodePattern)),
		validation.Field(&req.Mode,
			validation.When(req.BatchNumber == "", validation.Required),
			validation.In(deliveryModes()...),
		),
		validation.Field(&req.RouteFrom, validation.Required),
		validation.Field(&req.RouteTo, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateApplyStatusCommandRequest(req ApplyStatusCommandRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In(shipmentStatuses()...)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateMarkReceivedRequest(req MarkReceivedRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.ReceivedAt, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateMarkDispatchedRequest(req MarkDispatchedRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.DispatchedAt, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateChangeDeliveryModeRequest(req ChangeDeliveryModeRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ShipmentID, validation.Required),
		validation.Field(&req.Mode, validation.Required, validation.In(deliveryModes()...)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateReplaceItemsRequest(req ReplaceItemsRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ShipmentID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
