package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gtfstrigger/config"
	"gtfstrigger/internal/delivery/api/response"
	deliverycontext "gtfstrigger/internal/delivery/context"
	"gtfstrigger/internal/domain/constants"
	domainerrors "gtfstrigger/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator validates a Google-signed ID token for the given audience
type TokenValidator func(req *http.Request, token, audience string) (*idtoken.Payload, error)

// TriggerHandler starts matching passes on request
type TriggerHandler struct {
	runner         *PassRunner
	verifyPushAuth bool
	validateToken  TokenValidator
	logger         *slog.Logger
}

// TriggerHandlerParams holds dependencies for the TriggerHandler
type TriggerHandlerParams struct {
	fx.In

	Runner *PassRunner
	Config *config.Config
	Logger *slog.Logger
}

// NewTriggerHandler creates a new trigger handler
func NewTriggerHandler(params TriggerHandlerParams) *TriggerHandler {
	// Push requests are only authenticated when they come from Google Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &TriggerHandler{
		runner:         params.Runner,
		verifyPushAuth: verifyPushAuth,
		validateToken:  validateGoogleToken,
		logger:         params.Logger,
	}
}

// RunPass handles POST /run and answers with the pass report
func (h *TriggerHandler) RunPass(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.runner.Run(ctx, TriggerManual, deliverycontext.GetRequestIDFromContext(ctx))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// HandlePush handles Pub/Sub push messages. Any message triggers one pass.
func (h *TriggerHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Matcher] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Matcher] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := pushMsg.Message.Attributes["request_id"]
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	report, err := h.runner.Run(ctx, TriggerPush, requestID)
	switch {
	case errors.Is(err, domainerrors.ErrPassInProgress):
		// Acknowledge so Pub/Sub does not redeliver a trigger that overlaps a running pass
		logger.Info("[Matcher] Pass already running, push trigger skipped",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusOK)
	case err != nil:
		logger.Error("[Matcher] Pass failed, asking Pub/Sub to retry",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("[Matcher] Push triggered pass finished",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int("delivered", report.Delivered),
	)

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to push requests
func (h *TriggerHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

func validateGoogleToken(req *http.Request, token, audience string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return payload, nil
}
