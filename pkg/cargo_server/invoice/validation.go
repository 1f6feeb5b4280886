package invoice

import (
	"fmt"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateEnsureInvoiceRequest(req EnsureInvoiceRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ShipmentID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
