package messaging

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const subjectPrefix = "hub."

// Event subjects, relative to subjectPrefix.
const (
	UserRegistered     = "user.registered"
	PostCreated        = "post.created"
	PostDeleted        = "post.deleted"
	PostLiked          = "post.liked"
	PostUnliked        = "post.unliked"
	PostCommented      = "post.commented"
	PostCommentRemoved = "post.comment_removed"
	ProfileDeleted     = "profile.deleted"
)

// Publisher emits domain events. Publishing is best effort: callers log
// failures and carry on.
type Publisher interface {
	Publish(subject string, event any) error
	Close()
}

type NatsPublisher struct {
	nc *nats.Conn
}

// ConnectNats dials url. An empty url returns a no-op publisher.
func ConnectNats(url string) (Publisher, error) {
	if url == "" {
		log.Println("NATS_URL not set, domain events disabled")
		return NopPublisher{}, nil
	}

	opts := []nats.Option{
		nats.Name("hub-service"),
		nats.Timeout(5 * time.Second),
		nats.ReconnectWait(1 * time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Println("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Printf("NATS error: %v", err)
		}),
		nats.DrainTimeout(10 * time.Second),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	log.Println("✅ Connected to NATS.")
	return &NatsPublisher{nc: nc}, nil
}

func (p *NatsPublisher) Publish(subject string, event any) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}
	if err := p.nc.Publish(subjectPrefix+subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains pending messages before closing the connection.
func (p *NatsPublisher) Close() {
	if p.nc == nil || !p.nc.IsConnected() {
		return
	}
	if err := p.nc.Drain(); err != nil {
		log.Printf("Error draining NATS connection: %v", err)
		p.nc.Close()
	}
	log.Println("✅ NATS connection closed.")
}

type NopPublisher struct{}

func (NopPublisher) Publish(string, any) error { return nil }
func (NopPublisher) Close()                    {}
