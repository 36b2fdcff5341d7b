package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/feesplit/feesplitd/internal/core/domain"
	"github.com/feesplit/feesplitd/internal/core/ports"
)

const (
	eventFeesProcessed           = "FEES_PROCESSED"
	eventDeveloperAddressUpdated = "DEVELOPER_ADDRESS_UPDATED"
)

type Service struct {
	pubsub ports.SecurePubSub

	handlers []func(event, message string)
}

func NewService(pubsub ports.SecurePubSub) *Service {
	return &Service{pubsub: pubsub}
}

func (s *Service) SecurePubSub() ports.SecurePubSub {
	return s.pubsub
}

// RegisterHandlerForEvent adds an in-process handler invoked with a copy of
// every published event. Handlers must not block.
func (s *Service) RegisterHandlerForEvent(handler func(event, message string)) {
	s.handlers = append(s.handlers, handler)
}

func (s *Service) AddWebhook(
	_ context.Context, webhook ports.Webhook,
) (string, error) {
	if !isValidEvent(webhook.GetEvent()) {
		return "", fmt.Errorf("unknown webhook event %s", webhook.GetEvent())
	}
	return s.pubsub.Subscribe(
		webhook.GetEvent(), webhook.GetEndpoint(), webhook.GetSecret(),
	)
}

func (s *Service) RemoveWebhook(_ context.Context, id string) error {
	return s.pubsub.Unsubscribe(ports.UnspecifiedTopic, id)
}

func (s *Service) ListWebhooks(
	_ context.Context, event string,
) ([]ports.WebhookInfo, error) {
	if event != ports.UnspecifiedTopic && !isValidEvent(event) {
		return nil, fmt.Errorf("unknown webhook event %s", event)
	}
	subs := s.pubsub.ListSubscriptionsForTopic(event)
	webhooks := make([]ports.WebhookInfo, 0, len(subs))
	for _, sub := range subs {
		webhooks = append(webhooks, webhookInfo{sub})
	}
	return webhooks, nil
}

func (s *Service) PublishFeesProcessedEvent(
	distribution domain.Distribution,
) error {
	event := eventFeesProcessed
	payload := map[string]interface{}{
		"event": event,
		"id":    distribution.Id,
		"fee": map[string]interface{}{
			"asset":  distribution.FeeAsset,
			"amount": distribution.FeeAmount,
		},
		"settlement_asset":  distribution.SettlementAsset,
		"total_amount":      distribution.TotalAmount,
		"strategy_amount":   distribution.StrategyAmount,
		"developer_amount":  distribution.DeveloperAmount,
		"developer_address": distribution.DeveloperAddress,
		"timestamp":         distribution.Timestamp,
		"date":              time.Unix(distribution.Timestamp, 0).Format(time.RFC3339),
	}
	if distribution.ConversionPrice != "" {
		payload["conversion_price"] = distribution.ConversionPrice
	}
	message, _ := json.Marshal(payload)

	return s.publish(event, string(message))
}

func (s *Service) PublishDeveloperAddressUpdatedEvent(
	oldAddress, newAddress string,
) error {
	event := eventDeveloperAddressUpdated
	payload := map[string]interface{}{
		"event":       event,
		"old_address": oldAddress,
		"new_address": newAddress,
		"date":        time.Now().Format(time.RFC3339),
	}
	message, _ := json.Marshal(payload)

	return s.publish(event, string(message))
}

func (s *Service) Close() {
	// nolint
	s.pubsub.Store().Close()
}

func (s *Service) publish(event, message string) error {
	for _, handler := range s.handlers {
		handler(event, message)
	}
	return s.pubsub.Publish(event, message)
}

func isValidEvent(event string) bool {
	switch event {
	case eventFeesProcessed, eventDeveloperAddressUpdated, ports.AnyTopic:
		return true
	default:
		return false
	}
}

type webhookInfo struct {
	ports.Subscription
}

func (i webhookInfo) GetId() string {
	return i.Subscription.Id()
}
func (i webhookInfo) GetEvent() string {
	return i.Subscription.Topic()
}
func (i webhookInfo) GetEndpoint() string {
	return i.Subscription.NotifyAt()
}
func (i webhookInfo) IsSecured() bool {
	return i.Subscription.IsSecured()
}
