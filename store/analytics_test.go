package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/models"
	"contactdesk/pkg/backend"
)

func seedMessage(t *testing.T, be *backend.Backend, at time.Time) *models.Message {
	t.Helper()
	msg := &models.Message{
		Name:      "Ann",
		Contact:   "ann@x.com",
		Body:      "a valid analytics body",
		Token:     uuid.NewString(),
		CreatedAt: at,
	}
	require.NoError(t, be.DB.Create(msg).Error)
	return msg
}

func seedReply(t *testing.T, be *backend.Backend, messageID uint, at time.Time) {
	t.Helper()
	require.NoError(t, be.DB.Create(&models.Reply{MessageID: messageID, Body: "seeded reply", CreatedAt: at}).Error)
}

func TestStatsEmpty(t *testing.T) {
	be := testBackend(t)
	analytics := NewAnalytics(be)

	stats, err := analytics.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalMessages)
	assert.Zero(t, stats.RepliedMessages)
	assert.Zero(t, stats.UnrepliedMessages)
	assert.Zero(t, stats.AvgReplyLatencyHours)
	assert.Len(t, stats.PerDay, 7)
	for _, d := range stats.PerDay {
		assert.Zero(t, d.Count)
	}
}

func TestStatsCountsAndLatency(t *testing.T) {
	be := testBackend(t)
	analytics := NewAnalytics(be)

	now := time.Now()

	// message A: two replies at +1h and +3h, two latency terms (1, 3)
	a := seedMessage(t, be, now)
	seedReply(t, be, a.ID, now.Add(1*time.Hour))
	seedReply(t, be, a.ID, now.Add(3*time.Hour))

	// message B: no reply
	seedMessage(t, be, now)

	// message C: one reply at +2h, one latency term (2)
	c := seedMessage(t, be, now)
	seedReply(t, be, c.ID, now.Add(2*time.Hour))

	stats, err := analytics.Stats()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalMessages)
	assert.EqualValues(t, 2, stats.RepliedMessages)
	assert.EqualValues(t, 1, stats.UnrepliedMessages)

	// one term per reply: (1 + 3 + 2) / 3, not a per-message average
	assert.InDelta(t, 2.0, stats.AvgReplyLatencyHours, 0.01)
}

func TestStatsPerDayBuckets(t *testing.T) {
	be := testBackend(t)
	analytics := NewAnalytics(be)

	now := time.Now()
	seedMessage(t, be, now)
	seedMessage(t, be, now)
	// older than the trailing window, must not appear
	seedMessage(t, be, now.AddDate(0, 0, -10))

	stats, err := analytics.Stats()
	require.NoError(t, err)
	require.Len(t, stats.PerDay, 7)

	today := now.UTC().Format("2006-01-02")
	assert.Equal(t, today, stats.PerDay[6].Date)
	assert.EqualValues(t, 2, stats.PerDay[6].Count)

	var windowTotal int64
	for _, d := range stats.PerDay {
		windowTotal += d.Count
	}
	assert.EqualValues(t, 2, windowTotal)
}

func TestCountsMultiReplyMessageCountedOnce(t *testing.T) {
	be := testBackend(t)
	analytics := NewAnalytics(be)

	now := time.Now()
	a := seedMessage(t, be, now)
	seedReply(t, be, a.ID, now.Add(time.Hour))
	seedReply(t, be, a.ID, now.Add(2*time.Hour))

	total, replied, err := analytics.Counts()
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.EqualValues(t, 1, replied)
}
