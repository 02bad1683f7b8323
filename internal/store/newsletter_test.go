package store

import (
	"testing"

	"github.com/google/uuid"

	"gozcuweb/internal/models"
)

func TestNewsletterSubscribeIsIdempotent(t *testing.T) {
	db := testDB(t)
	s := NewNewsletterStore(db)

	email := "test-abone-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanSubscribers(t, db, email) })

	first, err := s.Subscribe(email, "website")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if first.Status != models.SubscriberStatusPending {
		t.Errorf("status: got %q, want pending", first.Status)
	}

	// Subscribing again must not create a second row or reset state.
	second, err := s.Subscribe(email, "website")
	if err != nil {
		t.Fatalf("Subscribe again: %v", err)
	}
	if second.ID != first.ID {
		t.Error("repeat subscribe created a new row")
	}
	if !second.SubscribedAt.Equal(first.SubscribedAt) {
		t.Error("repeat subscribe reset subscribed_at")
	}
}

func TestNewsletterResubscribeAfterUnsubscribe(t *testing.T) {
	db := testDB(t)
	s := NewNewsletterStore(db)

	email := "test-geri-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanSubscribers(t, db, email) })

	if _, err := s.Subscribe(email, "website"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := s.Unsubscribe(email); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	back, err := s.Subscribe(email, "website")
	if err != nil {
		t.Fatalf("Resubscribe: %v", err)
	}
	if back.Status != models.SubscriberStatusPending {
		t.Errorf("status after resubscribe: got %q, want pending", back.Status)
	}
}

func TestNewsletterConfirm(t *testing.T) {
	db := testDB(t)
	s := NewNewsletterStore(db)

	email := "test-onay-" + uuid.NewString()[:8] + "@example.com"
	t.Cleanup(func() { cleanSubscribers(t, db, email) })

	if _, err := s.Subscribe(email, "website"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if err := s.Confirm(email); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	sub, err := s.FindByEmail(email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if sub.Status != models.SubscriberStatusConfirmed {
		t.Errorf("status: got %q, want confirmed", sub.Status)
	}
}
