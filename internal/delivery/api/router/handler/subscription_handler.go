package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"gtfstrigger/internal/delivery/api/response"
	"gtfstrigger/internal/delivery/api/validator"
	"gtfstrigger/internal/domain/entity"
	domainerrors "gtfstrigger/internal/domain/errors"
	"gtfstrigger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscriptionRequest is the request body of POST and PUT /settings
type SubscriptionRequest struct {
	GTFSRTEndpoint string           `json:"gtfs_rt_endpoint" validate:"required"`
	GTFSEndpoint   *string          `json:"gtfs_endpoint" validate:"required"`
	UserEmail      string           `json:"user_email" validate:"required"`
	WebhookURL     string           `json:"webhook_url" validate:"required,url"`
	Filters        entity.FilterSet `json:"filters"`
	Details        map[string]any   `json:"details"`
}

func (r *SubscriptionRequest) toInput() *usecase.SubscriptionInput {
	input := &usecase.SubscriptionInput{
		FeedKey:        strings.TrimSpace(r.GTFSRTEndpoint),
		OwnerAddress:   r.UserEmail,
		DeliveryTarget: r.WebhookURL,
		Filters:        r.Filters,
		Details:        r.Details,
	}
	if r.GTFSEndpoint != nil {
		input.StaticFeedEndpoint = *r.GTFSEndpoint
	}
	if input.Details == nil {
		input.Details = map[string]any{}
	}

	return input
}

// SettingsList is the payload of GET /settings
type SettingsList struct {
	Settings []*entity.Subscription `json:"settings"`
}

// CreateSubscription handles POST /settings
func (h *SubscriptionHandler) CreateSubscription(c echo.Context) error {
	req, err := h.bindRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subscription, err := h.subscriptionUC.CreateSubscription(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Settings saved.", subscription.ID)
}

// ListSubscriptions handles GET /settings?email=
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	subscriptions, err := h.subscriptionUC.ListByOwner(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SettingsList{Settings: subscriptions})
}

// UpdateSubscription handles PUT /settings/:id
func (h *SubscriptionHandler) UpdateSubscription(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return response.BadRequest(c, "MISSING_ID", "id is required in path")
	}

	req, err := h.bindRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subscription, err := h.subscriptionUC.UpdateSubscription(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Settings updated.", subscription.ID)
}

// DeleteSubscription handles DELETE /settings/:id
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return response.BadRequest(c, "MISSING_ID", "id is required in path")
	}

	if err := h.subscriptionUC.DeleteSubscription(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Item deleted successfully", "")
}

// DeleteByOwnerLink handles GET /delete-alarm?userEmail=, the unsubscribe link
// placed in notification emails
func (h *SubscriptionHandler) DeleteByOwnerLink(c echo.Context) error {
	if err := h.subscriptionUC.DeleteByOwnerLink(c.Request().Context(), c.QueryParam("userEmail")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Item deleted successfully", "")
}

// bindRequest decodes and validates the body
func (h *SubscriptionHandler) bindRequest(c echo.Context) (*SubscriptionRequest, error) {
	var req SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(bindDetails(err))
	}

	if err := c.Validate(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(validator.FieldErrors(err), "; "))
	}

	return &req, nil
}

func bindDetails(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "request body must be a JSON object"
}
