package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/batchops"
	"github.com/cargoline/cargoline/pkg/cargo_server/middleware"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

func (a *API) createBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)

	var req batchops.CreateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator

	ts := time.Now().Unix()
	result, err := a.batchCtrl.CreateBatch(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (a *API) getBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := mux.Vars(r)["number"]

	result, err := a.batchCtrl.GetBatch(ctx, number)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) listBatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r, 20)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := storage.ListBatchesRequest{
		Offset: offset,
		Limit:  limit,
	}
	if statuses := r.URL.Query().Get("status"); statuses != "" {
		req.Statuses = lo.Map(strings.Split(statuses, ","), func(s string, _ int) model.BatchStatus {
			return model.BatchStatus(s)
		})
	}
	if modes := r.URL.Query().Get("mode"); modes != "" {
		req.Modes = lo.Map(strings.Split(modes, ","), func(m string, _ int) model.DeliveryMode {
			return model.DeliveryMode(m)
		})
	}

	result, err := a.batchCtrl.ListBatches(ctx, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) formBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	number := mux.Vars(r)["number"]

	ts := time.Now().Unix()
	result, err := a.batchCtrl.FormBatch(ctx, ts, batchops.FormBatchRequest{
		Requester: operator,
		Number:    number,
	})
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) applyToBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	number := mux.Vars(r)["number"]

	var req batchops.ApplyToBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator
	req.Number = number

	ts := time.Now().Unix()
	result, err := a.batchCtrl.ApplyToBatch(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
