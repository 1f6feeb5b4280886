package api

import (
	"net/http"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/middleware"
	"github.com/cargoline/cargoline/pkg/cargo_server/webhook"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

func (a *API) createWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)

	var req webhook.CreateWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator

	ts := time.Now().Unix()
	result, err := a.webhookCtrl.Create(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (a *API) listWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, limit, err := parsePagination(r, 20)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.webhookCtrl.List(ctx, webhook.ListWebhookRequest{
		Offset:   offset,
		Limit:    limit,
		ClientID: r.URL.Query().Get("client_id"),
	})
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) updateWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	webhookID := mux.Vars(r)["id"]

	var req webhook.UpdateWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Requester = operator
	req.ID = webhookID

	ts := time.Now().Unix()
	result, err := a.webhookCtrl.Update(ctx, ts, req)
	if err != nil {
		reportError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (a *API) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	operator, _ := ctx.Value(middleware.OPERATOR).(string)
	webhookID := mux.Vars(r)["id"]

	req := webhook.DeleteWebhookRequest{
		ID:        webhookID,
		Requester: operator,
		ClientID:  r.URL.Query().Get("client_id"),
	}

	ts := time.Now().Unix()
	if err := a.webhookCtrl.Delete(ctx, ts, req); err != nil {
		reportError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
