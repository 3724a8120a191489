package rabbitmq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientRejectsBadURL(t *testing.T) {
	client, err := NewClient(Config{URL: "http://localhost:5672/"})
	assert.Nil(t, client)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to RabbitMQ")
}

func TestPublishWithoutChannel(t *testing.T) {
	client := &Client{exchange: DefaultExchange}
	err := client.Publish("user.registered", map[string]string{"userID": "u1"})
	assert.EqualError(t, err, "RabbitMQ channel is not available")
}

func TestCloseWithoutConnection(t *testing.T) {
	client := &Client{}
	assert.NoError(t, client.Close())
}
