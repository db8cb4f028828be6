package model

import (
	"time"

	"gorm.io/datatypes"
)

// SubscriptionModel is the GORM-specific struct for the 'alert_subscriptions' table.
// Rows are keyed by (feed_key, owner_address); id is a unique secondary key.
type SubscriptionModel struct {
	FeedKey            string         `gorm:"primaryKey;type:varchar(128)"`
	OwnerAddress       string         `gorm:"primaryKey;type:text"`
	ID                 string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	StaticFeedEndpoint string         `gorm:"type:text"`
	DeliveryTarget     string         `gorm:"type:text"`
	Filters            datatypes.JSON `gorm:"type:jsonb"`
	Details            datatypes.JSON `gorm:"type:jsonb"`
	LastNotifiedAt     *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "alert_subscriptions"
}
