// Copyright (c) 2026 Gözcü Yazılım Teknoloji Ltd. Şti. <iletisim@gozcu.com.tr>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberStatus represents the opt-in state of a newsletter subscriber.
type SubscriberStatus string

const (
	SubscriberStatusPending      SubscriberStatus = "pending"
	SubscriberStatusConfirmed    SubscriberStatus = "confirmed"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
)

// NewsletterSubscriber is a newsletter signup. The email address is the
// unique key; re-subscribing an unsubscribed address resets it to pending.
type NewsletterSubscriber struct {
	ID           uuid.UUID        `json:"id"`
	Email        string           `json:"email"`
	Status       SubscriberStatus `json:"status"`
	Source       string           `json:"source"`
	SubscribedAt time.Time        `json:"subscribed_at"`
}
