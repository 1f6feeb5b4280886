package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/lifecycle"
	"github.com/cargoline/cargoline/pkg/cargo_server/middleware"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/cargoline/cargoline/pkg/cargo_server/trackno"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

func reportError(w http.ResponseWriter, r *http.Request, err error) {
	errCode := model.ErrorToHttpStatus(err)
	if errCode/100 == 5 {
		logrus.Errorf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
	} else {
		logrus.Debugf("%s %s returns status code %d with error: %v", r.Method, r.RequestURI, errCode, err.Error())
	}
	http.Error(w, err.Error(), errCode)
}

func writeJSON(w http.ResponseWriter, statusCode int, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

func (a *API) createShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)

	var req lifecycle.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator

	ts := time.Now().Unix()
	result, err := a.lifecycleCtrl.CreateShipment(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (a *API) getShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shipmentID := mux.Vars(r)["id"]

	result, err := a.lifecycleCtrl.GetShipment(ctx, shipmentID)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) listShipments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r, 20)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := storage.ListShipmentsRequest{
		Offset: offset,
		Limit:  limit,
	}
	if clientID := r.URL.Query().Get("client_id"); clientID != "" {
		req.ClientIDs = []string{clientID}
	}
	if batchNumber := r.URL.Query().Get("batch_number"); batchNumber != "" {
		req.BatchNumbers = []string{batchNumber}
	}
	if trackNumber := r.URL.Query().Get("track_number"); trackNumber != "" {
		req.TrackNumbers = []string{trackNumber}
	}
	if statuses := r.URL.Query().Get("status"); statuses != "" {
		req.Statuses = lo.Map(strings.Split(statuses, ","), func(s string, _ int) model.ShipmentStatus {
			return model.ShipmentStatus(s)
		})
	}

	result, err := a.lifecycleCtrl.ListShipments(ctx, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) listStatusHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	shipmentID := mux.Vars(r)["id"]

	offset, limit, err := parsePagination(r, 100)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.lifecycleCtrl.ListStatusHistory(ctx, storage.ListStatusHistoryRequest{
		Offset:     offset,
		Limit:      limit,
		ShipmentID: shipmentID,
	})
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) applyStatusCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	shipmentID := mux.Vars(r)["id"]

	var req lifecycle.ApplyStatusCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator
	req.ShipmentID = shipmentID

	ts := time.Now().Unix()
	result, err := a.lifecycleCtrl.ApplyStatusCommand(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) markReceived(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	shipmentID := mux.Vars(r)["id"]

	var req lifecycle.MarkReceivedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator
	req.ShipmentID = shipmentID

	ts := time.Now().Unix()
	result, err := a.lifecycleCtrl.MarkReceived(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) markDispatched(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	shipmentID := mux.Vars(r)["id"]

	var req lifecycle.MarkDispatchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator
	req.ShipmentID = shipmentID

	ts := time.Now().Unix()
	result, err := a.lifecycleCtrl.MarkDispatched(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) changeDeliveryMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	shipmentID := mux.Vars(r)["id"]

	var req lifecycle.ChangeDeliveryModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator
	req.ShipmentID = shipmentID

	ts := time.Now().Unix()
	result, err := a.lifecycleCtrl.ChangeDeliveryMode(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) replaceItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	shipmentID := mux.Vars(r)["id"]

	var req lifecycle.ReplaceItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator
	req.ShipmentID = shipmentID

	ts := time.Now().Unix()
	result, err := a.lifecycleCtrl.ReplaceItems(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) decodeTrackNumber(w http.ResponseWriter, r *http.Request) {
	trackNumber := mux.Vars(r)["number"]

	result, err := trackno.Decode(trackNumber)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
