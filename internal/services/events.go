package services

import "log"

// Routing keys of the domain events the services publish.
const (
	EventUserRegistered = "user.registered"
	EventUserDeleted    = "user.deleted"
	EventReviewCreated  = "review.created"
	EventReviewDeleted  = "review.deleted"
)

// EventPublisher sends a domain event to the message broker.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// publishEvent never fails the calling operation; broker problems are only logged.
func publishEvent(p EventPublisher, routingKey string, payload interface{}) {
	if p == nil {
		log.Printf("Event publisher is not initialized. Skipping %s event.", routingKey)
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
