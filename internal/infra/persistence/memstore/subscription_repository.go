// Package memstore implements the subscription store on a gocloud.dev document collection.
// It backs the "memory" store provider, optionally snapshotted to a file between runs.
package memstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/domain/repository"
	"gtfstrigger/internal/errors"

	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

const keyField = "Key"

// subscriptionDocument is the stored shape of a subscription.
type subscriptionDocument struct {
	Key                string
	ID                 string
	FeedKey            string
	OwnerAddress       string
	StaticFeedEndpoint string
	DeliveryTarget     string
	Filters            string
	Details            string
	LastNotifiedAt     time.Time
	DocstoreRevision   any
}

func documentKey(feedKey, ownerAddress string) string {
	return feedKey + "\x00" + ownerAddress
}

// OpenCollection opens an in-memory collection keyed by (feed key, owner address).
// A non-empty filename loads the collection from that file and saves it back on Close.
func OpenCollection(filename string) (*docstore.Collection, error) {
	coll, err := memdocstore.OpenCollection(keyField, &memdocstore.Options{Filename: filename})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open memory collection")
	}

	return coll, nil
}

// subscriptionRepository implements repository.SubscriptionRepository on a docstore collection.
type subscriptionRepository struct {
	coll   *docstore.Collection
	logger *slog.Logger

	// serializes the id uniqueness check with the write
	mu *sync.Mutex
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(coll *docstore.Collection, logger *slog.Logger) repository.SubscriptionRepository {
	return &subscriptionRepository{
		coll:   coll,
		logger: logger,
		mu:     &sync.Mutex{},
	}
}

func (repo *subscriptionRepository) ScanAll(ctx context.Context) ([]*entity.Subscription, error) {
	iter := repo.coll.Query().Get(ctx)
	defer iter.Stop()

	subscriptions := make([]*entity.Subscription, 0)
	for {
		var doc subscriptionDocument
		err := iter.Next(ctx, &doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan subscriptions")
		}

		subscription, err := toSubscriptionDomain(&doc)
		if err != nil {
			repo.logger.WarnContext(ctx, "Skipping malformed subscription document",
				slog.String("id", doc.ID),
				slog.String("feed_key", doc.FeedKey),
				slog.Any("error", err),
			)

			continue
		}
		subscriptions = append(subscriptions, subscription)
	}

	return subscriptions, nil
}

func (repo *subscriptionRepository) Put(ctx context.Context, subscription *entity.Subscription) error {
	doc, err := fromSubscriptionDomain(subscription)
	if err != nil {
		return errors.Wrap(err, "failed to encode subscription")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, err := repo.findDocumentByID(ctx, doc.ID)
	switch {
	case errors.Is(err, repository.ErrSubscriptionNotFound):
	case err != nil:
		return err
	case existing.Key != doc.Key:
		return repository.ErrDuplicateSubscriptionID
	}

	if err := repo.coll.Put(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to save subscription")
	}

	return nil
}

func (repo *subscriptionRepository) FindByID(ctx context.Context, id string) (*entity.Subscription, error) {
	doc, err := repo.findDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subscription, err := toSubscriptionDomain(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode subscription %s", id)
	}

	return subscription, nil
}

func (repo *subscriptionRepository) DeleteByKeys(ctx context.Context, feedKey, ownerAddress string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	err := repo.coll.Delete(ctx, &subscriptionDocument{Key: documentKey(feedKey, ownerAddress)})
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

func (repo *subscriptionRepository) findDocumentByID(ctx context.Context, id string) (*subscriptionDocument, error) {
	iter := repo.coll.Query().Where("ID", "=", id).Limit(1).Get(ctx)
	defer iter.Stop()

	var doc subscriptionDocument
	err := iter.Next(ctx, &doc)
	if errors.Is(err, io.EOF) {
		return nil, repository.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return &doc, nil
}

// --- Mapper Functions ---

func toSubscriptionDomain(doc *subscriptionDocument) (*entity.Subscription, error) {
	subscription := &entity.Subscription{
		ID:                 doc.ID,
		FeedKey:            doc.FeedKey,
		StaticFeedEndpoint: doc.StaticFeedEndpoint,
		OwnerAddress:       doc.OwnerAddress,
		DeliveryTarget:     doc.DeliveryTarget,
	}

	if doc.Filters != "" {
		if err := json.Unmarshal([]byte(doc.Filters), &subscription.Filters); err != nil {
			return nil, errors.Wrap(err, "decode filters")
		}
	}
	if doc.Details != "" {
		if err := json.Unmarshal([]byte(doc.Details), &subscription.Details); err != nil {
			return nil, errors.Wrap(err, "decode details")
		}
	}
	if !doc.LastNotifiedAt.IsZero() {
		last := doc.LastNotifiedAt.UTC()
		subscription.LastNotifiedAt = &last
	}

	return subscription, nil
}

func fromSubscriptionDomain(subscription *entity.Subscription) (*subscriptionDocument, error) {
	if subscription == nil {
		return nil, errors.New("nil subscription")
	}

	filters, err := json.Marshal(subscription.Filters)
	if err != nil {
		return nil, errors.Wrap(err, "encode filters")
	}

	doc := &subscriptionDocument{
		Key:                documentKey(subscription.FeedKey, subscription.OwnerAddress),
		ID:                 subscription.ID,
		FeedKey:            subscription.FeedKey,
		OwnerAddress:       subscription.OwnerAddress,
		StaticFeedEndpoint: subscription.StaticFeedEndpoint,
		DeliveryTarget:     subscription.DeliveryTarget,
		Filters:            string(filters),
	}

	if subscription.Details != nil {
		details, err := json.Marshal(subscription.Details)
		if err != nil {
			return nil, errors.Wrap(err, "encode details")
		}
		doc.Details = string(details)
	}
	if subscription.LastNotifiedAt != nil {
		doc.LastNotifiedAt = subscription.LastNotifiedAt.UTC()
	}

	return doc, nil
}
