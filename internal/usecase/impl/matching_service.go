package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gtfstrigger/config"
	deliverycontext "gtfstrigger/internal/delivery/context"
	"gtfstrigger/internal/domain/alert"
	"gtfstrigger/internal/domain/entity"
	domainerrors "gtfstrigger/internal/domain/errors"
	"gtfstrigger/internal/domain/repository"
	"gtfstrigger/internal/domain/service"
	"gtfstrigger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultPassConcurrency = 4

type matchingService struct {
	subscriptionRepo repository.SubscriptionRepository
	registry         service.FeedRegistry
	fetcher          service.FeedFetcher
	deliverer        service.WebhookDeliverer
	publisher        service.EventPublisher
	evaluator        *alert.Evaluator
	policy           alert.Policy
	concurrency      int
	logger           *slog.Logger
	now              func() time.Time

	// held for the whole pass; a trigger that cannot take it is skipped
	running sync.Mutex
}

// MatchingServiceParams holds dependencies for MatchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	Registry         service.FeedRegistry
	Fetcher          service.FeedFetcher
	Deliverer        service.WebhookDeliverer
	Publisher        service.EventPublisher
	StopResolver     service.StopResolver
	Config           *config.Config
	Logger           *slog.Logger
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	cooldown := alert.DefaultCooldown
	concurrency := defaultPassConcurrency
	if cfg := params.Config.Matcher; cfg != nil {
		if cfg.Cooldown > 0 {
			cooldown = cfg.Cooldown
		}
		if cfg.Concurrency > 0 {
			concurrency = cfg.Concurrency
		}
	}

	return &matchingService{
		subscriptionRepo: params.SubscriptionRepo,
		registry:         params.Registry,
		fetcher:          params.Fetcher,
		deliverer:        params.Deliverer,
		publisher:        params.Publisher,
		evaluator:        alert.NewEvaluator(params.StopResolver, params.Logger),
		policy:           alert.NewPolicy(cooldown),
		concurrency:      concurrency,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *matchingService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RunPass runs one matching pass over every stored subscription.
func (s *matchingService) RunPass(ctx context.Context) (*entity.PassReport, error) {
	if !s.running.TryLock() {
		return nil, domainerrors.ErrPassInProgress
	}
	defer s.running.Unlock()

	logger := s.getLogger(ctx)
	report := &entity.PassReport{StartedAt: s.now().UTC()}

	subscriptions, err := s.subscriptionRepo.ScanAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load subscriptions")
	}
	report.Subscriptions = len(subscriptions)

	groups, skipped := s.groupByFeed(ctx, subscriptions)
	report.SkippedSubscriptions = skipped
	report.Groups = len(groups)

	results := make([]*entity.PassReport, 0, len(groups))
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for feedKey, members := range groups {
		g.Go(func() error {
			groupReport := s.evaluateGroup(groupCtx, feedKey, members)

			mu.Lock()
			results = append(results, groupReport)
			mu.Unlock()

			// Group failures are counted, never returned, so siblings keep running.
			return nil
		})
	}
	_ = g.Wait()

	for _, groupReport := range results {
		report.Merge(groupReport)
	}
	report.Duration = s.now().Sub(report.StartedAt)

	logger.InfoContext(ctx, "Matching pass finished",
		slog.Int("subscriptions", report.Subscriptions),
		slog.Int("groups", report.Groups),
		slog.Int("failed_feeds", report.FailedFeeds),
		slog.Int("vehicles", report.Vehicles),
		slog.Int("matches", report.Matches),
		slog.Int("suppressed", report.Suppressed),
		slog.Int("delivered", report.Delivered),
		slog.Int("delivery_failures", report.DeliveryFailures),
		slog.Int("persist_failures", report.PersistFailures),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

// groupByFeed partitions subscriptions by feed key. Records without a feed
// key, with an unknown key, or without an owner or target are skipped.
func (s *matchingService) groupByFeed(ctx context.Context, subscriptions []*entity.Subscription) (map[string][]*entity.Subscription, int) {
	logger := s.getLogger(ctx)
	groups := make(map[string][]*entity.Subscription)
	skipped := 0

	for _, sub := range subscriptions {
		if sub == nil || sub.FeedKey == "" {
			skipped++

			continue
		}
		if _, ok := s.registry.Lookup(sub.FeedKey); !ok {
			logger.WarnContext(ctx, "Skipping subscription with unknown feed",
				slog.String("subscription_id", sub.ID),
				slog.String("feed_key", sub.FeedKey),
			)
			skipped++

			continue
		}
		if !sub.Deliverable() {
			logger.WarnContext(ctx, "Skipping subscription without owner or delivery target",
				slog.String("subscription_id", sub.ID),
				slog.String("feed_key", sub.FeedKey),
			)
			skipped++

			continue
		}
		groups[sub.FeedKey] = append(groups[sub.FeedKey], sub)
	}

	return groups, skipped
}

// evaluateGroup fetches one feed and evaluates its subscriptions. A failed
// fetch produces zero deliveries for the group.
func (s *matchingService) evaluateGroup(ctx context.Context, feedKey string, subscriptions []*entity.Subscription) *entity.PassReport {
	logger := s.getLogger(ctx).With(slog.String("feed_key", feedKey))
	report := &entity.PassReport{}

	snapshot, err := s.fetcher.Fetch(ctx, feedKey)
	if err != nil {
		logger.WarnContext(ctx, "Feed fetch failed, skipping group",
			slog.Int("subscriptions", len(subscriptions)),
			slog.Any("error", err),
		)
		report.FailedFeeds++

		return report
	}

	for vehicle := range snapshot.Vehicles() {
		if ctx.Err() != nil {
			logger.WarnContext(ctx, "Pass cancelled while evaluating group", slog.Any("error", ctx.Err()))

			break
		}
		report.Vehicles++

		for _, sub := range subscriptions {
			now := s.now().UTC()
			if !s.evaluator.Matches(ctx, vehicle, sub.Filters, feedKey, now) {
				continue
			}
			report.Matches++

			if s.policy.ShouldSuppress(sub, now) {
				report.Suppressed++

				continue
			}

			s.notify(ctx, logger, vehicle, sub, now, report)
		}
	}

	return report
}

// notify delivers the event, then records the attempt time and overwrites the
// stored record. The timestamp is written even when delivery failed.
func (s *matchingService) notify(
	ctx context.Context,
	logger *slog.Logger,
	vehicle entity.VehicleSnapshot,
	sub *entity.Subscription,
	now time.Time,
	report *entity.PassReport,
) {
	// The event carries the subscription as it was when delivered.
	delivered := *sub
	event := entity.NewNotificationEvent(vehicle, &delivered, now)

	record := &entity.DispatchRecord{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		SubscriptionID: sub.ID,
		FeedKey:        sub.FeedKey,
		Event:          event,
	}

	if err := s.deliverer.Deliver(ctx, sub.DeliveryTarget, event); err != nil {
		logger.WarnContext(ctx, "Webhook delivery failed",
			slog.String("subscription_id", sub.ID),
			slog.String("vehicle_id", vehicle.VehicleID),
			slog.Any("error", err),
		)
		report.DeliveryFailures++
		record.Error = err.Error()
	} else {
		report.Delivered++
		record.Delivered = true
	}

	notifiedAt := now
	sub.LastNotifiedAt = &notifiedAt
	if err := s.subscriptionRepo.Put(ctx, sub); err != nil {
		logger.ErrorContext(ctx, "Failed to persist notification timestamp",
			slog.String("subscription_id", sub.ID),
			slog.Any("error", err),
		)
		report.PersistFailures++
	}

	if err := s.publisher.PublishDispatch(ctx, record); err != nil {
		logger.WarnContext(ctx, "Failed to publish dispatch record",
			slog.String("subscription_id", sub.ID),
			slog.Any("error", err),
		)
	}
}
