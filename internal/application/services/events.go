package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"hub-service/internal/messaging"
)

// publish emits a domain event. Failures are logged and never fail the
// request.
func publish(publisher messaging.Publisher, subject string, event any) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(subject, event); err != nil {
		log.Printf("Failed to publish %s event: %v", subject, err)
	}
}

func postEvent(postID, userID uuid.UUID) messaging.PostEvent {
	return messaging.PostEvent{
		PostID:    postID.String(),
		UserID:    userID.String(),
		Timestamp: time.Now().UTC(),
	}
}
