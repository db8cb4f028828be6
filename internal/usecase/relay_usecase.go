package usecase

import (
	"context"
	"encoding/json"

	"gtfstrigger/internal/domain/entity"
	"gtfstrigger/internal/errors"
)

// Channels a relayed notification can go out on.
const (
	ChannelEmail      = "email"
	ChannelPush       = "fcm"
	ChannelMattermost = "mattermost"
)

// Recipients accepts a JSON string or a list of strings.
type Recipients []string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Recipients) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = Recipients{single}

		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.Wrap(err, "recipients must be a string or a list of strings")
	}
	*r = list

	return nil
}

// RelayRequest is the webhook body received by the notifier: the
// NotificationEvent plus the query parameters merged by the matcher.
type RelayRequest struct {
	Event *entity.NotificationEvent
	Email Recipients
	FCM   Recipients
}

// UnmarshalJSON decodes the event fields and the optional email and fcm fields.
func (r *RelayRequest) UnmarshalJSON(data []byte) error {
	var event entity.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.WithStack(err)
	}

	var extra struct {
		Email Recipients `json:"email"`
		FCM   Recipients `json:"fcm"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return errors.WithStack(err)
	}

	r.Event = &event
	r.Email = extra.Email
	r.FCM = extra.FCM

	return nil
}

// RelayResult reports what the relay sent.
type RelayResult struct {
	Channels []string `json:"channels"`
	Subject  string   `json:"subject"`
}

// RelayUsecase defines the interface for relaying a matched event to people
type RelayUsecase interface {
	// Relay sends the event by email when the request names addresses, else by
	// push when it names device tokens, and always posts the text to chat.
	Relay(ctx context.Context, req *RelayRequest) (*RelayResult, error)
}
