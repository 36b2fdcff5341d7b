package pubsub

import (
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"
)

// store persists the webhook subscriptions on a dedicated badger store. An
// empty base dir makes it a volatile in-memory one.
type store struct {
	db *badgerhold.Store
}

func newStore(baseDbDir string, logger badger.Logger) (*store, error) {
	var pubsubDir string
	if len(baseDbDir) > 0 {
		pubsubDir = filepath.Join(baseDbDir, "pubsub")
	}

	isInMemory := len(pubsubDir) <= 0

	opts := badger.DefaultOptions(pubsubDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	return &store{db}, nil
}

func (s *store) Init() error {
	subs, err := s.getAllSubscriptions()
	if err != nil {
		return err
	}
	log.Debugf("pubsub: loaded %d webhook subscription(s)", len(subs))
	return nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) addSubscription(sub *Subscription) error {
	return s.db.Insert(sub.ID, sub)
}

func (s *store) getSubscription(id string) (*Subscription, error) {
	var sub Subscription
	if err := s.db.Get(id, &sub); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *store) removeSubscription(id string) error {
	if err := s.db.Delete(id, Subscription{}); err != nil &&
		err != badgerhold.ErrNotFound {
		return err
	}
	return nil
}

func (s *store) getSubscriptionsForEvent(event string) (
	subscriptions, error,
) {
	var subs []Subscription
	query := badgerhold.Where("Event").Eq(event)
	if err := s.db.Find(&subs, query); err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *store) getAllSubscriptions() (subscriptions, error) {
	var subs []Subscription
	if err := s.db.Find(&subs, nil); err != nil {
		return nil, err
	}
	return subs, nil
}
