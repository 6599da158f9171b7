package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectNatsWithoutURL(t *testing.T) {
	publisher, err := ConnectNats("")
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(PostCreated, PostEvent{PostID: "p"}))
	publisher.Close()
}

func TestConnectNatsUnreachable(t *testing.T) {
	_, err := ConnectNats("nats://127.0.0.1:1")
	assert.Error(t, err)
}

func TestNatsPublisherClosed(t *testing.T) {
	p := &NatsPublisher{}
	assert.Error(t, p.Publish(PostLiked, PostEvent{}))
	p.Close()
}

func TestRecorderKeepsOrder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Publish(PostCreated, PostEvent{}))
	require.NoError(t, r.Publish(PostLiked, PostEvent{}))
	assert.Equal(t, []string{PostCreated, PostLiked}, r.Subjects())
}
