package operator_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/feesplit/feesplitd/internal/core/ports"
)

// **** WalletService ****

type mockWallet struct {
	mock.Mock
}

func (m *mockWallet) Transfer(
	ctx context.Context, asset, recipient string, amount uint64,
) (string, error) {
	args := m.Called(ctx, asset, recipient, amount)

	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockWallet) GetBalance(
	ctx context.Context, asset string,
) (uint64, error) {
	args := m.Called(ctx, asset)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

func (m *mockWallet) Close() {
	m.Called()
}

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

// **** BuildData ****

type buildData struct{}

func (b buildData) GetVersion() string {
	return "0.1.0"
}
func (b buildData) GetCommit() string {
	return "e4b2a1c"
}
func (b buildData) GetDate() string {
	return "2023-01-01T00:00:00Z"
}

// **** Page ****

type page struct {
	number int64
	size   int64
}

func (p page) GetNumber() int64 {
	return p.number
}
func (p page) GetSize() int64 {
	return p.size
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
