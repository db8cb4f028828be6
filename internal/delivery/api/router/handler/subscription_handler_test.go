package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gtfstrigger/internal/delivery/api/response"
	"gtfstrigger/internal/delivery/api/validator"
	"gtfstrigger/internal/domain/entity"
	domainerrors "gtfstrigger/internal/domain/errors"
	mockUsecase "gtfstrigger/internal/mocks/usecase"
	"gtfstrigger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"gtfs_rt_endpoint": "odpt_jreast",
	"gtfs_endpoint": "https://static.example.com/gtfs.zip",
	"user_email": "taro@example.com",
	"webhook_url": "https://hooks.example.com/notify?email=taro@example.com",
	"filters": {
		"trip_id": "trip123",
		"target_area": {"type": "Point", "coordinates": [139.7, 35.6], "properties": {"radius": 500}}
	},
	"details": {"label": "Commute"}
}`

func newSubscriptionHandler(t *testing.T) (*SubscriptionHandler, *mockUsecase.MockSubscriptionUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockSubscriptionUsecase(t)

	return NewSubscriptionHandler(SubscriptionHandlerParams{
		SubscriptionUC: uc,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), uc
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	t.Parallel()

	h, uc := newSubscriptionHandler(t)
	uc.EXPECT().
		CreateSubscription(mock.Anything, mock.MatchedBy(func(in *usecase.SubscriptionInput) bool {
			return in.FeedKey == "odpt_jreast" &&
				in.OwnerAddress == "taro@example.com" &&
				in.StaticFeedEndpoint == "https://static.example.com/gtfs.zip" &&
				in.Filters.TripID == "trip123" &&
				in.Filters.TargetArea != nil &&
				in.Details["label"] == "Commute"
		})).
		Return(&entity.Subscription{ID: "new-id"}, nil).Once()

	c, rec := newContext(http.MethodPost, "/settings", validBody)
	require.NoError(t, h.CreateSubscription(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Settings saved."`)
	assert.Contains(t, rec.Body.String(), `"id":"new-id"`)
}

func TestSubscriptionHandler_CreateSubscription_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"gtfs_rt_endpoint":`},
		{name: "missing user_email", body: `{"gtfs_rt_endpoint":"data","gtfs_endpoint":"","webhook_url":"https://h.example.com"}`},
		{name: "missing gtfs_endpoint key", body: `{"gtfs_rt_endpoint":"data","user_email":"a@b.c","webhook_url":"https://h.example.com"}`},
		{name: "webhook is not a url", body: `{"gtfs_rt_endpoint":"data","gtfs_endpoint":"","user_email":"a@b.c","webhook_url":"hooks"}`},
		{name: "weekday is not a list", body: `{"gtfs_rt_endpoint":"data","gtfs_endpoint":"","user_email":"a@b.c","webhook_url":"https://h.example.com","filters":{"weekday":"Monday"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newSubscriptionHandler(t)
			c, rec := newContext(http.MethodPost, "/settings", tt.body)
			require.NoError(t, h.CreateSubscription(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec).Code)
		})
	}
}

func TestSubscriptionHandler_CreateSubscription_UsecaseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "unknown feed", err: domainerrors.ErrInvalidFeedKey.WithDetails("nope"), wantCode: http.StatusBadRequest},
		{name: "bad target area", err: domainerrors.ErrInvalidTargetArea, wantCode: http.StatusBadRequest},
		{name: "store failure", err: domainerrors.ErrSubscriptionSaveFailed, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, uc := newSubscriptionHandler(t)
			uc.EXPECT().CreateSubscription(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			c, rec := newContext(http.MethodPost, "/settings", validBody)
			require.NoError(t, h.CreateSubscription(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSubscriptionHandler_ListSubscriptions(t *testing.T) {
	t.Parallel()

	h, uc := newSubscriptionHandler(t)
	uc.EXPECT().ListByOwner(mock.Anything, "{taro}").
		Return([]*entity.Subscription{{ID: "a", OwnerAddress: "taro@example.com"}}, nil).Once()

	c, rec := newContext(http.MethodGet, "/settings?email=%7Btaro%7D", "")
	require.NoError(t, h.ListSubscriptions(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data SettingsList `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Settings, 1)
	assert.Equal(t, "a", body.Data.Settings[0].ID)
}

func TestSubscriptionHandler_ListSubscriptions_MissingEmail(t *testing.T) {
	t.Parallel()

	h, uc := newSubscriptionHandler(t)
	uc.EXPECT().ListByOwner(mock.Anything, "").Return(nil, domainerrors.ErrMissingOwner).Once()

	c, rec := newContext(http.MethodGet, "/settings", "")
	require.NoError(t, h.ListSubscriptions(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrMissingOwner.ErrorCode(), decodeError(t, rec).Code)
}

func TestSubscriptionHandler_UpdateSubscription(t *testing.T) {
	t.Parallel()

	h, uc := newSubscriptionHandler(t)
	uc.EXPECT().UpdateSubscription(mock.Anything, "abc", mock.Anything).Return(&entity.Subscription{ID: "abc"}, nil).Once()

	c, rec := newContext(http.MethodPut, "/settings/abc", validBody)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.UpdateSubscription(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Settings updated."`)
}

func TestSubscriptionHandler_UpdateSubscription_NotFound(t *testing.T) {
	t.Parallel()

	h, uc := newSubscriptionHandler(t)
	uc.EXPECT().UpdateSubscription(mock.Anything, "abc", mock.Anything).Return(nil, domainerrors.ErrSubscriptionNotFound).Once()

	c, rec := newContext(http.MethodPut, "/settings/abc", validBody)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.UpdateSubscription(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubscriptionHandler_DeleteSubscription(t *testing.T) {
	t.Parallel()

	h, uc := newSubscriptionHandler(t)
	uc.EXPECT().DeleteSubscription(mock.Anything, "abc").Return(nil).Once()
	uc.EXPECT().DeleteSubscription(mock.Anything, "gone").Return(domainerrors.ErrSubscriptionNotFound).Once()

	c, rec := newContext(http.MethodDelete, "/settings/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.DeleteSubscription(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item deleted successfully")

	c, rec = newContext(http.MethodDelete, "/settings/gone", "")
	c.SetParamNames("id")
	c.SetParamValues("gone")
	require.NoError(t, h.DeleteSubscription(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Item not found", decodeError(t, rec).Message)
}

func TestSubscriptionHandler_DeleteByOwnerLink(t *testing.T) {
	t.Parallel()

	h, uc := newSubscriptionHandler(t)
	uc.EXPECT().DeleteByOwnerLink(mock.Anything, "{taro@example.com}").Return(nil).Once()

	c, rec := newContext(http.MethodGet, "/delete-alarm?userEmail=%7Btaro%40example.com%7D", "")
	require.NoError(t, h.DeleteByOwnerLink(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item deleted successfully")
}
