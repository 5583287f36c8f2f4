package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"comefundme/internal/core/domain"
	"comefundme/internal/core/port"
	"comefundme/internal/core/port/mocks"
)

type fakeRedis struct {
	lists      map[string][][]byte
	published  map[string][][]byte
	rpushErr   error
	publishErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{lists: map[string][][]byte{}, published: map[string][][]byte{}}
}

func (f *fakeRedis) RPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	if f.rpushErr != nil {
		return redis.NewIntResult(0, f.rpushErr)
	}
	for _, v := range values {
		f.lists[key] = append(f.lists[key], v.([]byte))
	}
	return redis.NewIntResult(int64(len(f.lists[key])), nil)
}

func (f *fakeRedis) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.publishErr != nil {
		return redis.NewIntResult(0, f.publishErr)
	}
	f.published[channel] = append(f.published[channel], message.([]byte))
	return redis.NewIntResult(1, nil)
}

func testDonation() domain.CampaignDonationReceived {
	var donor domain.Address
	donor[0] = 0xab
	return domain.CampaignDonationReceived{
		ID:     domain.NewCampaignID(donor, "t", "d"),
		Donor:  donor,
		Amount: domain.Ether(4),
	}
}

func TestRedisPublisher(t *testing.T) {
	client := newFakeRedis()
	pub := NewRedisPublisher(client, "ledger:events", "ledger")
	pub.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	event := testDonation()
	require.NoError(t, pub.Publish(context.Background(), event))

	require.Len(t, client.lists["ledger:events"], 1)
	require.Len(t, client.published["ledger"], 1)
	assert.Equal(t, client.lists["ledger:events"][0], client.published["ledger"][0])

	var env Envelope
	require.NoError(t, json.Unmarshal(client.lists["ledger:events"][0], &env))
	_, err := uuid.Parse(env.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.EventCampaignDonationReceived, env.Name)
	assert.Equal(t, event.ID.Hex(), env.CampaignID)
	assert.True(t, env.OccurredAt.Equal(pub.now()))

	var got domain.CampaignDonationReceived
	require.NoError(t, json.Unmarshal(env.Payload, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, event.Donor, got.Donor)
	assert.Equal(t, 0, event.Amount.Cmp(got.Amount))
}

func TestRedisPublisherWithoutChannel(t *testing.T) {
	client := newFakeRedis()
	pub := NewRedisPublisher(client, "ledger:events", "")

	require.NoError(t, pub.Publish(context.Background(), domain.CampaignStarted{}))
	assert.Len(t, client.lists["ledger:events"], 1)
	assert.Empty(t, client.published)
}

func TestRedisPublisherErrors(t *testing.T) {
	client := newFakeRedis()
	client.rpushErr = errors.New("connection refused")
	pub := NewRedisPublisher(client, "k", "c")
	assert.ErrorIs(t, pub.Publish(context.Background(), domain.CampaignStarted{}), client.rpushErr)

	client.rpushErr = nil
	client.publishErr = errors.New("readonly")
	assert.ErrorIs(t, pub.Publish(context.Background(), domain.CampaignStarted{}), client.publishErr)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	pub := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	event := testDonation()
	require.NoError(t, pub.Publish(context.Background(), event))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ledger event", rec["msg"])
	assert.Equal(t, domain.EventCampaignDonationReceived, rec["event"])
	assert.Equal(t, event.Donor.Hex(), rec["donor"])
	assert.Equal(t, "4000000000000000000", rec["amount"])
}

func TestMultiJoinsErrors(t *testing.T) {
	ctx := context.Background()
	first := mocks.NewMockEventPublisher(t)
	second := mocks.NewMockEventPublisher(t)
	boom := errors.New("boom")

	event := domain.CampaignEnded{FundsRaised: domain.Ether(1)}
	first.EXPECT().Publish(mock.Anything, event).Return(boom).Once()
	second.EXPECT().Publish(mock.Anything, event).Return(nil).Once()

	err := Multi{first, second}.Publish(ctx, event)
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, Multi{}.Publish(ctx, event))
}

var _ port.EventPublisher = (*RedisPublisher)(nil)
var _ port.EventPublisher = (*LogPublisher)(nil)
var _ port.EventPublisher = Multi(nil)
