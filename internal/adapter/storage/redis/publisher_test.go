package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"casino-wallet-gateway/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewPublisher(client)
	ctx := context.Background()

	sub := client.Subscribe(ctx, domain.TopicBalanceChanged)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	event := domain.BalanceChangedEvent{
		AccountID:     uuid.New(),
		TransactionID: "tx-1",
		Kind:          domain.OperationDebit,
		Balance:       49000,
		Currency:      "EUR",
	}
	err = pub.Publish(ctx, domain.TopicBalanceChanged, event)
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got domain.BalanceChangedEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, event.AccountID, got.AccountID)
		assert.Equal(t, int64(49000), got.Balance)
	case <-time.After(2 * time.Second):
		t.Fatal("no message received on balance channel")
	}
}

func TestPublisher_RejectsUnmarshalablePayload(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewPublisher(client)

	err := pub.Publish(context.Background(), domain.TopicOpsAlert, make(chan int))
	assert.Error(t, err)
}
