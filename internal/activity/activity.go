// Package activity records what the user does in the UI (RSVPs, invitee
// changes, wizard completions) on an in-process JetStream stream and reduces
// the stream back into a feed.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/nats"
	natsserver "github.com/nats-io/nats-server/v2/server"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Activity is a single recorded user action.
type Activity struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Kind      string          `json:"kind"`    // rsvp, invitee, wizard, share
	Action    string          `json:"action"`  // set, add, remove, complete, copy
	Subject   string          `json:"subject"` // Event id, invitee email, or step id
	Meta      json.RawMessage `json:"meta,omitempty"`
	Data      string          `json:"data"`
}

// Feed is the reduced view of every recorded activity.
type Feed struct {
	RSVP              map[string]catalog.RSVPStatus // Event id -> current RSVP
	Entries           []Activity                    // Chronological
	WizardCompletions int
	InviteesAdded     int
	InviteesRemoved   int
	Shares            int
}

// Apply folds one activity into the feed.
func (f *Feed) Apply(a Activity) {
	f.Entries = append(f.Entries, a)

	switch a.Kind {
	case nats.KindRSVP:
		if status, err := catalog.ParseRSVPStatus(a.Data); err == nil {
			f.RSVP[a.Subject] = status
		}
	case nats.KindInvitee:
		switch a.Action {
		case "add":
			f.InviteesAdded++
		case "remove":
			f.InviteesRemoved++
		}
	case nats.KindWizard:
		if a.Action == "complete" {
			f.WizardCompletions++
		}
	case nats.KindShare:
		f.Shares++
	}
}

// Store publishes and replays activity.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewStore creates a Store over an existing JetStream context and stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{js: js, stream: stream}
}

// Record appends an activity to the stream, filling in ID and Timestamp
// when they are unset.
func (s *Store) Record(ctx context.Context, a Activity) (Activity, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}

	data, err := json.Marshal(a)
	if err != nil {
		return a, fmt.Errorf("failed to marshal activity: %w", err)
	}

	subject := nats.SubjectFor(a.Kind, a.Subject)
	logger.Debug("Recording activity: kind=%s action=%s subject=%s", a.Kind, a.Action, a.Subject)

	if _, err := s.js.Publish(ctx, subject, data); err != nil {
		logger.Error("Failed to publish activity to %s: %v", subject, err)
		return a, fmt.Errorf("failed to publish activity: %w", err)
	}
	return a, nil
}

// RSVP records the user's response for an event.
func (s *Store) RSVP(ctx context.Context, eventID string, status catalog.RSVPStatus) error {
	_, err := s.Record(ctx, Activity{
		Kind:    nats.KindRSVP,
		Action:  "set",
		Subject: eventID,
		Data:    string(status),
	})
	return err
}

// InviteeAdded records an invitee added in the attendees step.
func (s *Store) InviteeAdded(ctx context.Context, email, name string) error {
	meta, _ := json.Marshal(map[string]string{"name": name})
	_, err := s.Record(ctx, Activity{
		Kind:    nats.KindInvitee,
		Action:  "add",
		Subject: email,
		Data:    email,
		Meta:    meta,
	})
	return err
}

// InviteeRemoved records an invitee removed in the attendees step.
func (s *Store) InviteeRemoved(ctx context.Context, email string) error {
	_, err := s.Record(ctx, Activity{
		Kind:    nats.KindInvitee,
		Action:  "remove",
		Subject: email,
		Data:    email,
	})
	return err
}

// WizardCompleted records that the create-event wizard reached its final state.
func (s *Store) WizardCompleted(ctx context.Context) error {
	_, err := s.Record(ctx, Activity{
		Kind:    nats.KindWizard,
		Action:  "complete",
		Subject: "create-event",
	})
	return err
}

// Shared records that a link was copied for sharing.
func (s *Store) Shared(ctx context.Context, subject, url string) error {
	_, err := s.Record(ctx, Activity{
		Kind:    nats.KindShare,
		Action:  "copy",
		Subject: subject,
		Data:    url,
	})
	return err
}

// Load replays the whole stream into a Feed.
func (s *Store) Load(ctx context.Context) (*Feed, error) {
	return s.load(ctx, "")
}

// LoadKind replays only activities of one kind.
func (s *Store) LoadKind(ctx context.Context, kind string) (*Feed, error) {
	return s.load(ctx, nats.SubjectForKind(kind))
}

func (s *Store) load(ctx context.Context, filter string) (*Feed, error) {
	// Ordered consumers are ephemeral, so replays never leave state behind.
	cfg := jetstream.OrderedConsumerConfig{DeliverPolicy: jetstream.DeliverAllPolicy}
	if filter != "" {
		cfg.FilterSubjects = []string{filter}
	}
	consumer, err := s.stream.OrderedConsumer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	feed := &Feed{RSVP: make(map[string]catalog.RSVPStatus)}

	const batchSize = 500
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		count := 0
		for msg := range msgs.Messages() {
			count++
			var a Activity
			if err := json.Unmarshal(msg.Data(), &a); err != nil {
				malformed++
				continue
			}
			feed.Apply(a)
		}

		if count < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("Skipped %d malformed activity entries", malformed)
	}
	return feed, nil
}

// Log bundles an embedded server, its connection and a Store.
type Log struct {
	*Store
	ns *natsserver.Server
	nc *natsgo.Conn
}

// Open starts an embedded NATS server and returns a ready activity log.
func Open(ctx context.Context, storeDir string) (*Log, error) {
	ns, err := nats.StartEmbedded(storeDir)
	if err != nil {
		return nil, fmt.Errorf("starting activity server: %w", err)
	}

	nc, err := nats.ConnectInProcess(ns)
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("connecting to activity server: %w", err)
	}

	js, err := nats.CreateJetStream(nc)
	if err != nil {
		_ = nats.Shutdown(nc, ns)
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	stream, err := nats.SetupStream(ctx, js)
	if err != nil {
		_ = nats.Shutdown(nc, ns)
		return nil, fmt.Errorf("setting up activity stream: %w", err)
	}

	return &Log{Store: NewStore(js, stream), ns: ns, nc: nc}, nil
}

// Close shuts down the connection and embedded server.
func (l *Log) Close() error {
	return nats.Shutdown(l.nc, l.ns)
}
