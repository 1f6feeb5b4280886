package webhook

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cargoline/cargoline/pkg/cargo_server/model"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage"
	"github.com/cargoline/cargoline/pkg/cargo_server/storage/postgres"
	"github.com/cargoline/cargoline/pkg/util"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Database      util.PostgresDatabaseConfig
	CheckInterval int
	BatchSize     int
	Timeout       int
	MaxRetry      int
}

type ProcessorOption func(p *Processor)

func WithStorage(storage storage.WebhookStorage) ProcessorOption {
	return func(p *Processor) {
		p.storage = storage
	}
}

// Processor drains the webhook outbox and POSTs each shipment, invoice or
// batch event to its subscriber. Delivery is at-least-once: an event leaves
// the outbox after a successful POST, after the retry budget is spent on an
// unreachable subscriber, or immediately when its payload cannot be decoded
// (a poison payload can never be delivered and would clog the outbox).
type Processor struct {
	retry         int
	batchSize     int
	checkInterval time.Duration
	timeout       time.Duration
	storage       storage.WebhookStorage
}

func NewProcessorWithConfig(cfg Config, opts ...ProcessorOption) (*Processor, error) {
	res := &Processor{
		retry:         cfg.MaxRetry,
		batchSize:     cfg.BatchSize,
		checkInterval: time.Second * time.Duration(cfg.CheckInterval),
		timeout:       time.Second * time.Duration(cfg.Timeout),
	}

	for _, opt := range opts {
		opt(res)
	}
	if res.storage == nil {
		webhookStorage, err := postgres.NewStorageWithConfig(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("create storage: %w", err)
		}
		res.storage = webhookStorage
	}

	return res, nil
}

func (p *Processor) Run(ctx context.Context) {
	logrus.Info("webhook outbox processor is now running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.checkInterval):
			p.drainOutbox(ctx)
		}
	}
}

func (p *Processor) drainOutbox(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := p.fetchBatch(ctx)
		if err != nil {
			logrus.Errorf("failed to fetch webhook outbox batch: %v", err)
			return
		}
		if len(msgs) == 0 {
			return
		}

		acked := make([]int64, 0, len(msgs))
		for _, msg := range msgs {
			event, err := decodeEvent(msg)
			if err != nil {
				logrus.Errorf("dead-lettering outbox record %d: %v", msg.RecID, err)
				acked = append(acked, msg.RecID)
				continue
			}

			if err := p.deliver(ctx, msg, event); err != nil {
				if !errors.Is(err, model.ErrWebhookUnreachable) {
					continue
				}
				logrus.Warnf("dropping %s event for %s after %d attempts: %v", event.Type, event.ID, p.retry, err)
			} else {
				logrus.Debugf("delivered %s event for %s to %s", event.Type, event.ID, event.Url)
			}
			acked = append(acked, msg.RecID)
		}

		if len(acked) == 0 {
			return
		}

		if err := p.ack(ctx, acked...); err != nil {
			logrus.Errorf("failed to delete webhook events from outbox: %v", err)
		}
	}
}

// decodeEvent recovers the event envelope from the stored payload. The
// envelope only routes the delivery; the payload itself is posted verbatim.
func decodeEvent(msg storage.OutboxMsg) (model.WebhookEvent, error) {
	var event model.WebhookEvent
	if err := json.Unmarshal(msg.Msg, &event); err != nil {
		return model.WebhookEvent{}, fmt.Errorf("undecodable payload: %v", err)
	}
	if event.Url == "" {
		return model.WebhookEvent{}, fmt.Errorf("payload has no subscriber url")
	}
	return event, nil
}

// deliver POSTs the stored payload bytes to the subscriber. The signature in
// msg.Key was computed over those exact bytes, so the body is never
// re-marshaled. Each attempt rebuilds the request because the previous
// attempt consumed the body.
func (p *Processor) deliver(ctx context.Context, msg storage.OutboxMsg, event model.WebhookEvent) error {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	transport.MaxIdleConnsPerHost = -1
	client := http.Client{Timeout: p.timeout, Transport: transport}

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, event.Url, bytes.NewReader(msg.Msg))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create http request: %v", err))
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Event-Type", string(event.Type))
			req.Header.Set("X-Payload-Signature", msg.Key)

			resp, err := client.Do(req)
			if err != nil {
				logrus.Debugf("post %s event to %s: %v", event.Type, event.Url, err)
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				logrus.Debugf("%s returned %v for %s event: %s", event.Url, resp.StatusCode, event.Type, string(body))
				return fmt.Errorf("unexpected status code: %v", resp.StatusCode)
			}

			return nil
		},
		retry.Attempts(uint(p.retry)),
		retry.Context(ctx),
	)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("subscriber %s did not accept the event%w", event.Url, model.ErrWebhookUnreachable)
	}
	return nil
}

func (p *Processor) fetchBatch(ctx context.Context) ([]storage.OutboxMsg, error) {
	tx, ctx, err := p.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return p.storage.GetWebhookEvent(ctx, tx, p.batchSize)
}

func (p *Processor) ack(ctx context.Context, recIDs ...int64) error {
	tx, ctx, err := p.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.storage.DeleteWebhookEvent(ctx, tx, recIDs...); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
