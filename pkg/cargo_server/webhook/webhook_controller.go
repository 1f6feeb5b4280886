package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"

	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/google/uuid"
)

type WebhookController interface {
	Create(ctx context.Context, ts int64, req CreateWebhookRequest) (model.Webhook, error)
	List(ctx context.Context, req ListWebhookRequest) (storage.ListWebhookResult, error)
	Update(ctx context.Context, ts int64, req UpdateWebhookRequest) (model.Webhook, error)
	Delete(ctx context.Context, ts int64, req DeleteWebhookRequest) error

	// SendWebhookEvent enqueues one outbox event for every webhook of the
	// client subscribed to eventType. It participates in the caller's
	// transaction so events are only published when the operation commits.
	// An empty clientID addresses webhooks of every client.
	SendWebhookEvent(ctx context.Context, tx storage.Tx, ts int64, clientID, subjectID string, eventType model.WebhookEventType) error
}

type CreateWebhookRequest struct {
	Requester string                   `json:"requester"`
	ClientID  string                   `json:"client_id"`
	Events    []model.WebhookEventType `json:"events"`
	Url       string                   `json:"url"`
	Secret    string                   `json:"secret"`
}

type ListWebhookRequest struct {
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
	ClientID string `json:"client_id"`
}

type UpdateWebhookRequest struct {
	ID        string                   `json:"id"`
	Requester string                   `json:"requester"`
	ClientID  string                   `json:"client_id"`
	Events    []model.WebhookEventType `json:"events"`
	Url       string                   `json:"url"`
	Secret    string                   `json:"secret"`
}

type DeleteWebhookRequest struct {
	ID        string `json:"id"`
	Requester string `json:"requester"`
	ClientID  string `json:"client_id"`
}

type _WebhookController struct {
	storage storage.WebhookStorage
}

func NewWebhookController(storage storage.WebhookStorage) WebhookController {
	return &_WebhookController{
		storage: storage,
	}
}

func (c *_WebhookController) Create(ctx context.Context, ts int64, req CreateWebhookRequest) (model.Webhook, error) {
	err := ValidateCreateWebhookRequest(req)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook := model.Webhook{
		ID:        uuid.NewString(),
		Version:   1,
		ClientID:  req.ClientID,
		Url:       req.Url,
		Events:    req.Events,
		Secret:    req.Secret,
		CreatedAt: ts,
		CreatedBy: req.Requester,
		UpdatedAt: ts,
		UpdatedBy: req.Requester,
		Deleted:   false,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Webhook{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = c.storage.AddWebhook(ctx, tx, webhook)
	if err != nil {
		return model.Webhook{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook.Secret = ""
	return webhook, nil
}

func (c *_WebhookController) List(ctx context.Context, req ListWebhookRequest) (storage.ListWebhookResult, error) {
	err := ValidateListWebhookRequest(req)
	if err != nil {
		return storage.ListWebhookResult{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListWebhookResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := c.storage.ListWebhook(ctx, tx, storage.ListWebhookRequest{
		Offset:   req.Offset,
		Limit:    req.Limit,
		ClientID: req.ClientID,
	})
	if err != nil {
		return storage.ListWebhookResult{}, err
	}

	for i := range res.Records {
		res.Records[i].Secret = ""
	}
	return res, nil
}

func (c *_WebhookController) Update(ctx context.Context, ts int64, req UpdateWebhookRequest) (model.Webhook, error) {
	err := ValidateUpdateWebhookRequest(req)
	if err != nil {
		return model.Webhook{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Webhook{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	webhook, err := c.getWebhook(ctx, tx, req.ClientID, req.ID)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook.Version += 1
	webhook.Url = req.Url
	webhook.Events = req.Events
	webhook.Secret = req.Secret
	webhook.UpdatedAt = ts
	webhook.UpdatedBy = req.Requester

	err = c.storage.AddWebhook(ctx, tx, webhook)
	if err != nil {
		return model.Webhook{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook.Secret = ""
	return webhook, nil
}

func (c *_WebhookController) Delete(ctx context.Context, ts int64, req DeleteWebhookRequest) error {
	err := ValidateDeleteWebhookRequest(req)
	if err != nil {
		return err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	webhook, err := c.getWebhook(ctx, tx, req.ClientID, req.ID)
	if err != nil {
		return err
	}

	webhook.Version += 1
	webhook.Deleted = true
	webhook.UpdatedAt = ts
	webhook.UpdatedBy = req.Requester

	err = c.storage.AddWebhook(ctx, tx, webhook)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (c *_WebhookController) SendWebhookEvent(ctx context.Context, tx storage.Tx, ts int64, clientID, subjectID string, eventType model.WebhookEventType) error {
	listReq := storage.ListWebhookRequest{
		Limit:    1000,
		ClientID: clientID,
		Events:   []string{string(eventType)},
	}
	listResult, err := c.storage.ListWebhook(ctx, tx, listReq)
	if err != nil {
		return err
	}

	for _, webhook := range listResult.Records {
		event := &model.WebhookEvent{
			ID:        subjectID,
			Url:       webhook.Url,
			Type:      eventType,
			CreatedAt: ts,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		key := signPayload(webhook.Secret, payload)
		if err := c.storage.AddWebhookEvent(ctx, tx, ts, key, event); err != nil {
			return err
		}
	}

	return nil
}

func (c *_WebhookController) getWebhook(ctx context.Context, tx storage.Tx, clientID, id string) (model.Webhook, error) {
	listResult, err := c.storage.ListWebhook(ctx, tx, storage.ListWebhookRequest{
		Limit:    1,
		ClientID: clientID,
		IDs:      []string{id},
	})
	if err != nil {
		return model.Webhook{}, err
	}
	if len(listResult.Records) == 0 {
		return model.Webhook{}, model.ErrWebhookNotFound
	}
	return listResult.Records[0], nil
}

// signPayload generates the HMAC-SHA1 signature the receiver can verify the
// payload with.
func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
