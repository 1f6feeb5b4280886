package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/invoice"
	"github.com/cargoline/cargoline/pkg/cargo_server/middleware"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/gorilla/mux"
)

func (a *API) ensureInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	shipmentID := mux.Vars(r)["id"]

	ts := time.Now().Unix()
	result, err := a.invoiceGen.EnsureInvoice(ctx, ts, invoice.EnsureInvoiceRequest{
		Requester:  operator,
		ShipmentID: shipmentID,
	})
	if err != nil {
		reportError(w, r, err)
		return
	}

	statusCode := http.StatusCreated
	if result.AlreadyExisted {
		statusCode = http.StatusOK
	}
	writeJSON(w, statusCode, result)
}

func (a *API) listInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r, 20)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := storage.ListInvoicesRequest{
		Offset: offset,
		Limit:  limit,
	}
	if shipmentID := r.URL.Query().Get("shipment_id"); shipmentID != "" {
		req.ShipmentIDs = []string{shipmentID}
	}
	if number := r.URL.Query().Get("number"); number != "" {
		req.Numbers = []string{number}
	}
	if statuses := r.URL.Query().Get("status"); statuses != "" {
		for _, status := range strings.Split(statuses, ",") {
			req.Statuses = append(req.Statuses, model.InvoiceStatus(status))
		}
	}

	result, err := a.invoiceGen.ListInvoices(ctx, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
