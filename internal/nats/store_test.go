package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubjectFor(t *testing.T) {
	tests := []struct {
		kind, subject, want string
	}{
		{KindRSVP, "3", "eventify.rsvp.3"},
		{KindInvitee, "a.b@example.com", "eventify.invitee.a-b@example-com"},
		{KindWizard, "", "eventify.wizard._"},
		{KindShare, "my event", "eventify.share.my_event"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, SubjectFor(tt.kind, tt.subject))
		})
	}
}

func TestSubjectForKind(t *testing.T) {
	require.Equal(t, "eventify.rsvp.>", SubjectForKind(KindRSVP))
}

func TestEmbeddedServerLifecycle(t *testing.T) {
	ctx := context.Background()

	ns, err := StartEmbedded(t.TempDir())
	require.NoError(t, err)

	nc, err := ConnectInProcess(ns)
	require.NoError(t, err)

	js, err := CreateJetStream(nc)
	require.NoError(t, err)

	stream, err := SetupStream(ctx, js)
	require.NoError(t, err)

	info, err := stream.Info(ctx)
	require.NoError(t, err)
	require.Equal(t, streamName, info.Config.Name)

	_, err = js.Publish(ctx, SubjectFor(KindRSVP, "1"), []byte(`{}`))
	require.NoError(t, err)

	require.NoError(t, Shutdown(nc, ns))
}
