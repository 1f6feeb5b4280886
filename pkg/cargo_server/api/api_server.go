package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/cargoline/cargoline/pkg/cargo_server/batchops"
	"github.com/cargoline/cargoline/pkg/cargo_server/invoice"
	"github.com/cargoline/cargoline/pkg/cargo_server/lifecycle"
	"github.com/cargoline/cargoline/pkg/cargo_server/middleware"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage/postgres"
	"github.com/cargoline/cargoline/pkg/cargo_server/webhook"
	"github.com/cargoline/cargoline/pkg/util"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	Database     util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress string                      `yaml:"local_address"`
}

type API struct {
	lifecycleCtrl lifecycle.LifecycleController
	batchCtrl     batchops.BatchController
	invoiceGen    invoice.Generator
	webhookCtrl   webhook.WebhookController

	httpServer *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	webhookCtrl := webhook.NewWebhookController(storage)
	invoiceGen := invoice.NewGenerator(storage, webhookCtrl)
	lifecycleCtrl := lifecycle.NewLifecycleController(
		storage,
		storage,
		invoiceGen,
		webhookCtrl,
		lifecycle.DefaultLocationRules(),
		lifecycle.DefaultTransitTimes(),
	)
	batchCtrl := batchops.NewBatchController(storage, lifecycleCtrl, webhookCtrl)

	return NewAPIWithController(lifecycleCtrl, batchCtrl, invoiceGen, webhookCtrl, cfg.LocalAddress)
}

func NewAPIWithController(
	lifecycleCtrl lifecycle.LifecycleController,
	batchCtrl batchops.BatchController,
	invoiceGen invoice.Generator,
	webhookCtrl webhook.WebhookController,
	localAddress string,
) (*API, error) {
	apiServer := &API{
		lifecycleCtrl: lifecycleCtrl,
		batchCtrl:     batchCtrl,
		invoiceGen:    invoiceGen,
		webhookCtrl:   webhookCtrl,
	}

	r := mux.NewRouter()
	r.Use(middleware.TimeTrace)
	r.Use(middleware.ExtractOperator)

	r.HandleFunc("/shipment", apiServer.createShipment).Methods(http.MethodPost)
	r.HandleFunc("/shipment", apiServer.listShipments).Methods(http.MethodGet)
	r.HandleFunc("/shipment/{id}", apiServer.getShipment).Methods(http.MethodGet)
	r.HandleFunc("/shipment/{id}/history", apiServer.listStatusHistory).Methods(http.MethodGet)
	r.HandleFunc("/shipment/{id}/status", apiServer.applyStatusCommand).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/received", apiServer.markReceived).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/dispatched", apiServer.markDispatched).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/mode", apiServer.changeDeliveryMode).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/items", apiServer.replaceItems).Methods(http.MethodPost)
	r.HandleFunc("/shipment/{id}/invoice", apiServer.ensureInvoice).Methods(http.MethodPost)

	r.HandleFunc("/invoice", apiServer.listInvoices).Methods(http.MethodGet)

	r.HandleFunc("/batch", apiServer.createBatch).Methods(http.MethodPost)
	r.HandleFunc("/batch", apiServer.listBatches).Methods(http.MethodGet)
	r.HandleFunc("/batch/{number}", apiServer.getBatch).Methods(http.MethodGet)
	r.HandleFunc("/batch/{number}/form", apiServer.formBatch).Methods(http.MethodPost)
	r.HandleFunc("/batch/{number}/apply", apiServer.applyToBatch).Methods(http.MethodPost)

	r.HandleFunc("/track_number/{number}", apiServer.decodeTrackNumber).Methods(http.MethodGet)

	r.HandleFunc("/webhook", apiServer.createWebhook).Methods(http.MethodPost)
	r.HandleFunc("/webhook", apiServer.listWebhook).Methods(http.MethodGet)
	r.HandleFunc("/webhook/{id}", apiServer.updateWebhook).Methods(http.MethodPost)
	r.HandleFunc("/webhook/{id}", apiServer.deleteWebhook).Methods(http.MethodDelete)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	return a.httpServer.Shutdown(ctx)
}

// parsePagination reads offset/limit query parameters. limit falls back to
// defaultLimit when absent.
func parsePagination(r *http.Request, defaultLimit int) (int, int, error) {
	offset := 0
	limit := defaultLimit

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.ParseInt(offsetStr, 10, 32)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("offset is invalid")
		}
		offset = int(parsed)
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil || parsed < 1 {
			return 0, 0, errors.New("limit is invalid")
		}
		limit = int(parsed)
	}

	return offset, limit, nil
}
