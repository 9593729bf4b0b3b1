package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ns-platform/notification-service/internal/api/respond"
	"github.com/ns-platform/notification-service/internal/config"
	"github.com/ns-platform/notification-service/internal/model"
	notifrepo "github.com/ns-platform/notification-service/internal/repository/notification"
)

// notificationService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Create(ctx context.Context, strategy retry.Strategy, n model.Notification) (model.Notification, error)
	ListByUser(ctx context.Context, userID string, opts notifrepo.ListOptions) ([]model.Notification, error)
}

// Handler handles HTTP requests related to notifications.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(s notificationService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body expected in a notification creation request.
type CreateRequest struct {
	UserID   string            `json:"userId" validate:"required"`
	Type     string            `json:"type" validate:"required"`
	Title    string            `json:"title" validate:"required"`
	Content  string            `json:"content" validate:"required"`
	Metadata map[string]string `json:"metadata"`
}

type createResponse struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	Notification model.Notification `json:"notification"`
}

type listResponse struct {
	Success       bool                 `json:"success"`
	Notifications []model.Notification `json:"notifications"`
	Pagination    pagination           `json:"pagination"`
}

type pagination struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

// Create handles POST /api/notifications.
//
// It validates the request body, creates a PENDING notification and enqueues
// it for delivery. The response only acknowledges acceptance; the delivery
// outcome is observable later through the list endpoint.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing required fields: userId, type, title, content"))
		return
	}

	notif := model.Notification{
		UserID:   req.UserID,
		Type:     model.Type(req.Type),
		Title:    req.Title,
		Content:  req.Content,
		Metadata: req.Metadata,
	}

	created, err := h.service.Create(c.Request.Context(), h.cfg.Retry, notif)
	if err != nil {
		if errors.Is(err, model.ErrInvalidType) ||
			errors.Is(err, model.ErrMissingEmailMetadata) ||
			errors.Is(err, model.ErrMissingPhoneMetadata) {
			zlog.Logger.Warn().Err(err).Str("type", req.Type).Msg("rejected notification")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("user_id", req.UserID).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("failed to create notification"))
		return
	}

	respond.Created(c.Writer, createResponse{
		Success:      true,
		Message:      "Notification created and queued for delivery",
		Notification: created,
	})
}

// ListByUser handles GET /api/users/:id/notifications.
//
// Supports limit/offset pagination (default 10/0) and an optional type filter.
func (h *Handler) ListByUser(c *ginext.Context) {
	userID := c.Param("id")
	if userID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user id"))
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
		return
	}

	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid offset"))
		return
	}

	opts := notifrepo.ListOptions{Limit: limit, Offset: offset}
	if typ := c.Query("type"); typ != "" {
		if !model.Type(typ).Valid() {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid notification type: %s", typ))
			return
		}
		opts.Type = model.Type(typ)
	}

	notifications, err := h.service.ListByUser(c.Request.Context(), userID, opts)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("failed to retrieve notifications"))
		return
	}

	if notifications == nil {
		notifications = []model.Notification{}
	}

	respond.OK(c.Writer, listResponse{
		Success:       true,
		Notifications: notifications,
		Pagination:    pagination{Limit: limit, Offset: offset},
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, map[string]string{"status": "ok"})
}
