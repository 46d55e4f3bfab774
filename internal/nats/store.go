package nats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "eventify_activity"
	subjectPrefix = "eventify"

	// Activity kinds
	KindRSVP    = "rsvp"
	KindInvitee = "invitee"
	KindWizard  = "wizard"
	KindShare   = "share"
)

// SubjectForKind returns the wildcard subject for every activity of a kind.
// Example: "eventify.rsvp.>"
func SubjectForKind(kind string) string {
	return fmt.Sprintf("%s.%s.>", subjectPrefix, kind)
}

// SubjectFor returns the subject an activity is published on.
// Subjects may not contain dots or spaces, so those are replaced.
// Example: "eventify.rsvp.3"
func SubjectFor(kind, subject string) string {
	if subject == "" {
		subject = "_"
	}
	subject = strings.NewReplacer(".", "-", " ", "_", "*", "_", ">", "_").Replace(subject)
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, kind, subject)
}

// SetupStream creates or updates the activity stream. Activity lives in
// memory only and is gone once the process exits.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  jetstream.MemoryStorage,
		MaxAge:   24 * time.Hour,
	})
}
