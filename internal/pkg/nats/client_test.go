package nats

import (
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "dispatch-test")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PublishSubscribe(t *testing.T) {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	srv := natsserver.RunServer(&opts)
	defer srv.Shutdown()

	client, err := NewClient(srv.ClientURL(), "dispatch-test")
	require.NoError(t, err)
	defer client.Close()
	assert.True(t, client.Connected())

	msgCh := make(chan *nats.Msg, 1)
	sub, err := client.Subscribe("load.>", func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.Publish("load.created", []byte(`{"load_id":"1027"}`)))

	select {
	case msg := <-msgCh:
		assert.Equal(t, "load.created", msg.Subject)
		assert.JSONEq(t, `{"load_id":"1027"}`, string(msg.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}
