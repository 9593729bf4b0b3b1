package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/ns-platform/notification-service/internal/mocks/api/handlers/notification"
	"github.com/ns-platform/notification-service/internal/config"
	"github.com/ns-platform/notification-service/internal/model"
	notifrepo "github.com/ns-platform/notification-service/internal/repository/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocknotificationService, *config.Config) {
	ctrl := gomock.NewController(t)

	mockService := mocks.NewMocknotificationService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := CreateRequest{
		UserID:  "u1",
		Type:    "IN_APP",
		Title:   "Hi",
		Content: "Hello",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	notif := model.Notification{
		UserID:  reqBody.UserID,
		Type:    model.TypeInApp,
		Title:   reqBody.Title,
		Content: reqBody.Content,
	}

	created := notif
	created.ID = uuid.NewString()
	created.Status = model.StatusPending

	mockService.EXPECT().
		Create(gomock.Any(), cfg.Retry, notif).
		Return(created, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Result().StatusCode)

	var resp createResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, created.ID, resp.Notification.ID)
	assert.Equal(t, model.StatusPending, resp.Notification.Status)
}

func TestHandler_Create_MissingRequiredFields(t *testing.T) {
	handler, _, _ := setupHandler(t)

	bodyBytes, _ := json.Marshal(map[string]string{"userId": "u1", "type": "IN_APP"})
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	// No service expectation: the request must be rejected before intake.
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_MissingEmailMetadata(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := CreateRequest{UserID: "u1", Type: "EMAIL", Title: "Hi", Content: "Hello"}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Create(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(model.Notification{}, model.ErrMissingEmailMetadata)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_InvalidType(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	reqBody := CreateRequest{UserID: "u1", Type: "PUSH", Title: "Hi", Content: "Hello"}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/notifications", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		Create(gomock.Any(), cfg.Retry, gomock.Any()).
		Return(model.Notification{}, model.ErrInvalidType)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_ListByUser_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/notifications?limit=1&offset=0", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "u1"}}

	notifications := []model.Notification{{ID: uuid.NewString(), UserID: "u1", Type: model.TypeInApp}}

	mockService.EXPECT().
		ListByUser(gomock.Any(), "u1", notifrepo.ListOptions{Limit: 1, Offset: 0}).
		Return(notifications, nil)

	handler.ListByUser(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp listResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Notifications, 1)
	assert.Equal(t, int64(1), resp.Pagination.Limit)
	assert.Equal(t, int64(0), resp.Pagination.Offset)
}

func TestHandler_ListByUser_Defaults(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/notifications", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "u1"}}

	mockService.EXPECT().
		ListByUser(gomock.Any(), "u1", notifrepo.ListOptions{Limit: 10, Offset: 0}).
		Return(nil, nil)

	handler.ListByUser(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp listResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotNil(t, resp.Notifications)
	assert.Empty(t, resp.Notifications)
}

func TestHandler_ListByUser_TypeFilter(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/u1/notifications?type=EMAIL", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "u1"}}

	mockService.EXPECT().
		ListByUser(gomock.Any(), "u1", notifrepo.ListOptions{Limit: 10, Offset: 0, Type: model.TypeEmail}).
		Return([]model.Notification{}, nil)

	handler.ListByUser(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_ListByUser_InvalidPagination(t *testing.T) {
	handler, _, _ := setupHandler(t)

	for _, query := range []string{"limit=abc", "limit=0", "offset=-1", "type=PUSH"} {
		req := httptest.NewRequest(http.MethodGet, "/api/users/u1/notifications?"+query, nil)
		w := httptest.NewRecorder()

		c, _ := gin.CreateTestContext(w)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "u1"}}

		handler.ListByUser(c)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, query)
	}
}

func TestHandler_Health(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Health(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
