package webhook_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/cargoline/cargoline/pkg/cargo_server/webhook"
	mock_storage "github.com/cargoline/cargoline/test/mock/cargo_server/storage"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type WebhookControllerTestSuite struct {
	suite.Suite

	ctx         context.Context
	ctrl        *gomock.Controller
	storage     *mock_storage.MockWebhookStorage
	tx          *mock_storage.MockTx
	webhookCtrl webhook.WebhookController
}

func TestWebhookController(t *testing.T) {
	suite.Run(t, new(WebhookControllerTestSuite))
}

func (s *WebhookControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockWebhookStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.webhookCtrl = webhook.NewWebhookController(s.storage)
}

func (s *WebhookControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WebhookControllerTestSuite) TestCreateWebhook() {
	ts := time.Now().Unix()
	req := webhook.CreateWebhookRequest{
		Requester: "operator",
		ClientID:  "client-1",
		Events:    []model.WebhookEventType{model.WebhookEventShipmentStatusChanged},
		Url:       "https://example.com/notify",
		Secret:    "secret-key",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().AddWebhook(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, wh model.Webhook) error {
				s.Assert().NotEmpty(wh.ID)
				s.Assert().Equal(int64(1), wh.Version)
				s.Assert().Equal("client-1", wh.ClientID)
				s.Assert().Equal("https://example.com/notify", wh.Url)
				s.Assert().Equal(req.Events, wh.Events)
				s.Assert().Equal("secret-key", wh.Secret)
				s.Assert().Equal("operator", wh.CreatedBy)
				s.Assert().False(wh.Deleted)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	created, err := s.webhookCtrl.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Empty(created.Secret)
	s.Assert().Equal("client-1", created.ClientID)
}

func (s *WebhookControllerTestSuite) TestCreateWebhookInvalidRequest() {
	_, err := s.webhookCtrl.Create(s.ctx, time.Now().Unix(), webhook.CreateWebhookRequest{
		Requester: "operator",
		ClientID:  "client-1",
		Url:       "not a url",
		Secret:    "secret-key",
		Events:    []model.WebhookEventType{model.WebhookEventShipmentStatusChanged},
	})
	s.Assert().ErrorIs(err, model.ErrInvalidParameter)
}

func (s *WebhookControllerTestSuite) TestListWebhook() {
	stored := storage.ListWebhookResult{
		Total: 1,
		Records: []model.Webhook{
			{
				ID:       "webhook-1",
				ClientID: "client-1",
				Url:      "https://example.com/notify",
				Secret:   "secret-key",
			},
		},
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, storage.ListWebhookRequest{
			Offset:   0,
			Limit:    10,
			ClientID: "client-1",
		}).Return(stored, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.webhookCtrl.List(s.ctx, webhook.ListWebhookRequest{
		Limit:    10,
		ClientID: "client-1",
	})
	s.Require().NoError(err)
	s.Require().Len(result.Records, 1)
	s.Assert().Empty(result.Records[0].Secret, "secrets never leave the controller")
}

func (s *WebhookControllerTestSuite) TestUpdateWebhook() {
	ts := time.Now().Unix()
	existing := model.Webhook{
		ID:       "webhook-1",
		Version:  1,
		ClientID: "client-1",
		Url:      "https://example.com/notify",
		Events:   []model.WebhookEventType{model.WebhookEventShipmentStatusChanged},
		Secret:   "old-secret",
	}
	req := webhook.UpdateWebhookRequest{
		ID:        "webhook-1",
		Requester: "operator",
		ClientID:  "client-1",
		Events:    []model.WebhookEventType{model.WebhookEventInvoiceCreated},
		Url:       "https://example.com/notify/v2",
		Secret:    "new-secret",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, storage.ListWebhookRequest{
			Limit:    1,
			ClientID: "client-1",
			IDs:      []string{"webhook-1"},
		}).Return(storage.ListWebhookResult{Total: 1, Records: []model.Webhook{existing}}, nil),
		s.storage.EXPECT().AddWebhook(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, wh model.Webhook) error {
				s.Assert().Equal(int64(2), wh.Version)
				s.Assert().Equal("https://example.com/notify/v2", wh.Url)
				s.Assert().Equal(req.Events, wh.Events)
				s.Assert().Equal("new-secret", wh.Secret)
				s.Assert().Equal("operator", wh.UpdatedBy)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	updated, err := s.webhookCtrl.Update(s.ctx, ts, req)
	s.Require().NoError(err)
	s.Assert().Empty(updated.Secret)
	s.Assert().Equal(int64(2), updated.Version)
}

func (s *WebhookControllerTestSuite) TestUpdateWebhookNotFound() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListWebhookResult{}, nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.webhookCtrl.Update(s.ctx, time.Now().Unix(), webhook.UpdateWebhookRequest{
		ID:        "webhook-missing",
		Requester: "operator",
		ClientID:  "client-1",
		Events:    []model.WebhookEventType{model.WebhookEventInvoiceCreated},
		Url:       "https://example.com/notify",
		Secret:    "secret-key",
	})
	s.Assert().ErrorIs(err, model.ErrWebhookNotFound)
}

func (s *WebhookControllerTestSuite) TestDeleteWebhook() {
	ts := time.Now().Unix()
	existing := model.Webhook{
		ID:       "webhook-1",
		Version:  3,
		ClientID: "client-1",
		Url:      "https://example.com/notify",
		Secret:   "secret-key",
	}

	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListWebhookResult{Total: 1, Records: []model.Webhook{existing}}, nil),
		s.storage.EXPECT().AddWebhook(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, wh model.Webhook) error {
				s.Assert().True(wh.Deleted)
				s.Assert().Equal(int64(4), wh.Version)
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	err := s.webhookCtrl.Delete(s.ctx, ts, webhook.DeleteWebhookRequest{
		ID:        "webhook-1",
		Requester: "operator",
		ClientID:  "client-1",
	})
	s.Require().NoError(err)
}

func (s *WebhookControllerTestSuite) TestSendWebhookEvent() {
	ts := time.Now().Unix()
	subscriber := model.Webhook{
		ID:       "webhook-1",
		ClientID: "client-1",
		Url:      "https://example.com/notify",
		Events:   []model.WebhookEventType{model.WebhookEventShipmentStatusChanged},
		Secret:   "secret-key",
	}

	gomock.InOrder(
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, storage.ListWebhookRequest{
			Limit:    1000,
			ClientID: "client-1",
			Events:   []string{string(model.WebhookEventShipmentStatusChanged)},
		}).Return(storage.ListWebhookResult{Total: 1, Records: []model.Webhook{subscriber}}, nil),
		s.storage.EXPECT().AddWebhookEvent(gomock.Any(), s.tx, ts, gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, eventTs int64, key string, event *model.WebhookEvent) error {
				s.Assert().Equal("shipment-1", event.ID)
				s.Assert().Equal("https://example.com/notify", event.Url)
				s.Assert().Equal(model.WebhookEventShipmentStatusChanged, event.Type)
				s.Assert().Equal(ts, event.CreatedAt)

				payload, err := json.Marshal(event)
				s.Require().NoError(err)
				mac := hmac.New(sha1.New, []byte("secret-key"))
				mac.Write(payload)
				s.Assert().Equal(hex.EncodeToString(mac.Sum(nil)), key)
				return nil
			},
		),
	)

	err := s.webhookCtrl.SendWebhookEvent(s.ctx, s.tx, ts, "client-1", "shipment-1", model.WebhookEventShipmentStatusChanged)
	s.Require().NoError(err)
}

func (s *WebhookControllerTestSuite) TestSendWebhookEventNoSubscriber() {
	ts := time.Now().Unix()

	s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListWebhookResult{}, nil)

	err := s.webhookCtrl.SendWebhookEvent(s.ctx, s.tx, ts, "client-1", "shipment-1", model.WebhookEventShipmentStatusChanged)
	s.Require().NoError(err)
}
