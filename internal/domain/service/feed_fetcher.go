package service

import (
	"context"

	"gtfstrigger/internal/domain/entity"
)

// FeedRegistry is the closed mapping from feed keys to feed definitions.
type FeedRegistry interface {
	Lookup(feedKey string) (entity.FeedDefinition, bool)
	Keys() []string
}

// FeedFetcher retrieves and decodes a vehicle position feed.
type FeedFetcher interface {
	// Fetch returns the decoded feed, or an error describing why the feed
	// could not be retrieved. A failed fetch only affects its own feed group.
	Fetch(ctx context.Context, feedKey string) (*entity.FeedSnapshot, error)
}
