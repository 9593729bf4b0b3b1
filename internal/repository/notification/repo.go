package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ns-platform/notification-service/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

const collectionName = "notifications"

// ListOptions controls pagination and filtering for user notification queries.
type ListOptions struct {
	Limit  int64
	Offset int64
	Type   model.Type // empty matches all types
}

// Repository provides access to the notifications collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a new notification repository.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// Create inserts a new notification and returns the stored record with its
// assigned id and timestamps.
func (r *Repository) Create(ctx context.Context, n model.Notification) (model.Notification, error) {
	now := time.Now().UTC()
	n.ID = uuid.NewString()
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// UpdateStatus sets the status of a notification. A record that already
// reached a terminal status is left untouched: the update matches nothing and
// the call is a no-op, so duplicate deliveries cannot rewrite SENT or FAILED.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status model.Status, updatedAt time.Time) error {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$nin": bson.A{model.StatusSent, model.StatusFailed}},
	}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": updatedAt}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	if res.MatchedCount == 0 {
		count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("failed to check notification existence: %w", err)
		}
		if count == 0 {
			return ErrNotificationNotFound
		}
		// Already terminal.
	}

	return nil
}

// GetStatusByID retrieves the current status of a notification.
func (r *Repository) GetStatusByID(ctx context.Context, id string) (model.Status, error) {
	opts := options.FindOne().SetProjection(bson.M{"status": 1})

	var doc struct {
		Status model.Status `bson:"status"`
	}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotificationNotFound
		}
		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return doc.Status, nil
}

// MarkDelivered records the in-app delivery time on a notification. For the
// in-app channel the store write is the delivery itself.
func (r *Repository) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	update := bson.M{"$set": bson.M{"delivered_at": at}}

	res, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to mark notification delivered: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// ListByUser retrieves a user's notifications ordered by creation time
// descending, with skip/limit pagination and an optional type filter.
func (r *Repository) ListByUser(ctx context.Context, userID string, opts ListOptions) ([]model.Notification, error) {
	filter := bson.M{"user_id": userID}
	if opts.Type != "" {
		filter["type"] = opts.Type
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(opts.Offset).
		SetLimit(opts.Limit)

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}

	return notifications, nil
}
