package pubsub_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/feesplit/feesplitd/internal/core/ports"
)

// **** SecurePubSub ****

type mockSecurePubSub struct {
	mock.Mock
}

func (m *mockSecurePubSub) Store() ports.PubSubStore {
	args := m.Called()

	var res ports.PubSubStore
	if a := args.Get(0); a != nil {
		res = a.(ports.PubSubStore)
	}
	return res
}

func (m *mockSecurePubSub) Subscribe(topic, endpoint, secret string) (string, error) {
	args := m.Called(topic, endpoint, secret)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockSecurePubSub) Unsubscribe(topic, id string) error {
	args := m.Called(topic, id)
	return args.Error(0)
}

func (m *mockSecurePubSub) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	args := m.Called(topic)

	var res []ports.Subscription
	if a := args.Get(0); a != nil {
		res = a.([]ports.Subscription)
	}
	return res
}

func (m *mockSecurePubSub) Publish(topic string, message string) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

// **** Subscription ****

type subscription struct {
	topic    string
	id       string
	endpoint string
	secured  bool
}

func (s subscription) Topic() string {
	return s.topic
}
func (s subscription) Id() string {
	return s.id
}
func (s subscription) IsSecured() bool {
	return s.secured
}
func (s subscription) NotifyAt() string {
	return s.endpoint
}

// **** Webhook ****

type webhook struct {
	event    string
	endpoint string
	secret   string
}

func (w webhook) GetEvent() string {
	return w.event
}
func (w webhook) GetEndpoint() string {
	return w.endpoint
}
func (w webhook) GetSecret() string {
	return w.secret
}
