package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ns-platform/notification-service/internal/model"
	"github.com/ns-platform/notification-service/internal/rabbitmq/queue"
	notifrepo "github.com/ns-platform/notification-service/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	Create(ctx context.Context, n model.Notification) (model.Notification, error)
	UpdateStatus(ctx context.Context, id string, status model.Status, updatedAt time.Time) error
	GetStatusByID(ctx context.Context, id string) (model.Status, error)
	ListByUser(ctx context.Context, userID string, opts notifrepo.ListOptions) ([]model.Notification, error)
}

type notificationPublisher interface {
	Publish(ctx context.Context, msg queue.Message) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service owns notification intake and store queries. Delivery itself is the
// worker's job: once a notification is accepted and enqueued, its outcome is
// only observable through status reads.
type Service struct {
	repo  notificationRepository
	queue notificationPublisher
	cache cache
}

func NewService(repo notificationRepository, queue notificationPublisher, cache cache) *Service {
	return &Service{repo: repo, queue: queue, cache: cache}
}

// Create validates the notification, persists it as PENDING and hands a
// snapshot to the delivery queue. The enqueue is best-effort: a failure after
// a successful insert leaves the record PENDING with no queue entry and is
// logged, not surfaced to the caller.
func (s *Service) Create(ctx context.Context, strategy retry.Strategy, n model.Notification) (model.Notification, error) {
	if !n.Type.Valid() {
		return model.Notification{}, fmt.Errorf("%w: %s", model.ErrInvalidType, n.Type)
	}

	if err := model.ValidateMetadata(n.Type, n.Metadata); err != nil {
		return model.Notification{}, err
	}

	n.Status = model.StatusPending
	n.RetryCount = 0

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, created.ID, string(created.Status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", created.ID).Msg("failed to cache notification status")
	}

	if err := s.queue.Publish(ctx, queue.Snapshot(created)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", created.ID).Msg("failed to enqueue notification")
	}

	return created, nil
}

// GetStatusByID returns the current status of a notification, preferring the
// cache and falling back to the store on a miss.
func (s *Service) GetStatusByID(ctx context.Context, strategy retry.Strategy, id string) (model.Status, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to get notification status from cache")
	}

	if err != nil {
		repoStatus, err := s.repo.GetStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get notification status: %w", err)
		}

		if cacheErr := s.cache.SetWithRetry(ctx, strategy, id, string(repoStatus)); cacheErr != nil {
			zlog.Logger.Error().Err(cacheErr).Str("id", id).Msg("failed to cache notification status")
		}

		return repoStatus, nil
	}

	return model.Status(status), nil
}

// SetStatus writes a notification status to the store and refreshes the
// cache. The store guards terminal records, so re-setting a finished
// notification is a no-op rather than an error.
func (s *Service) SetStatus(ctx context.Context, strategy retry.Strategy, id string, status model.Status) error {
	if err := s.repo.UpdateStatus(ctx, id, status, time.Now().UTC()); err != nil {
		return fmt.Errorf("update notification status: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id, string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to cache notification status")
	}

	return nil
}

// ListByUser returns a page of the user's notifications, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string, opts notifrepo.ListOptions) ([]model.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}
