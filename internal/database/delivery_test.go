package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lolabot/saint-objet/pkg/models"
)

func TestDeliveryRepository_Record(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDeliveryRepo(db.conn)

	delivery := &models.Delivery{
		Month:    1,
		Day:      1,
		Channel:  models.ChannelDesktop,
		Success:  true,
		Announce: "Chalut ! Aujourd'hui, Lourdi 1, c'est la Sainte-Veisalgie.\nBonne fête à toutes les Veisalgies 🎆",
	}

	err := repo.Record(delivery)
	require.NoError(t, err, "Failed to record delivery")

	assert.NotZero(t, delivery.ID, "Expected delivery ID to be set after recording")
	assert.False(t, delivery.DeliveredAt.IsZero(), "Expected DeliveredAt to be filled in")
}

func TestDeliveryRepository_SentToday(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDeliveryRepo(db.conn)
	now := time.Now()

	// Empty table: nothing sent yet
	sent, err := repo.SentToday(now)
	require.NoError(t, err)
	assert.False(t, sent, "Expected no delivery on empty table")

	// A failed delivery today does not count
	err = repo.Record(&models.Delivery{
		Month: int(now.Month()), Day: now.Day(),
		Channel: models.ChannelDesktop, Success: false,
		Announce: "test", DeliveredAt: now,
	})
	require.NoError(t, err)

	sent, err = repo.SentToday(now)
	require.NoError(t, err)
	assert.False(t, sent, "Failed deliveries must not count as sent")

	// A successful delivery yesterday does not count either
	err = repo.Record(&models.Delivery{
		Month: int(now.Month()), Day: now.Day(),
		Channel: models.ChannelDesktop, Success: true,
		Announce: "test", DeliveredAt: now.AddDate(0, 0, -1),
	})
	require.NoError(t, err)

	sent, err = repo.SentToday(now)
	require.NoError(t, err)
	assert.False(t, sent, "Yesterday's delivery must not count as sent today")

	// A successful delivery today counts
	err = repo.Record(&models.Delivery{
		Month: int(now.Month()), Day: now.Day(),
		Channel: models.ChannelSlack, Success: true,
		Announce: "test", DeliveredAt: now,
	})
	require.NoError(t, err)

	sent, err = repo.SentToday(now)
	require.NoError(t, err)
	assert.True(t, sent, "Expected today's successful delivery to count")
}

func TestDeliveryRepository_GetLatest(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDeliveryRepo(db.conn)

	// Empty table
	latest, err := repo.GetLatest()
	require.NoError(t, err, "Unexpected error on empty table")
	assert.Nil(t, latest, "Expected nil when no delivery exists")

	now := time.Now()
	older := &models.Delivery{
		Month: 1, Day: 1, Channel: models.ChannelDesktop,
		Success: true, Announce: "older", DeliveredAt: now.Add(-time.Hour),
	}
	newer := &models.Delivery{
		Month: 1, Day: 1, Channel: models.ChannelSlack,
		Success: true, Announce: "newer", DeliveredAt: now,
	}
	require.NoError(t, repo.Record(older))
	require.NoError(t, repo.Record(newer))

	latest, err = repo.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "newer", latest.Announce)
	assert.Equal(t, models.ChannelSlack, latest.Channel)
}

func TestDeliveryRepository_ListRecent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDeliveryRepo(db.conn)
	now := time.Now()

	for i := 0; i < 5; i++ {
		err := repo.Record(&models.Delivery{
			Month: 1, Day: i + 1, Channel: models.ChannelDesktop,
			Success: true, Announce: "test", DeliveredAt: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	deliveries, err := repo.ListRecent(3)
	require.NoError(t, err)
	require.Len(t, deliveries, 3)

	// Newest first
	assert.Equal(t, 5, deliveries[0].Day)
	assert.Equal(t, 4, deliveries[1].Day)
	assert.Equal(t, 3, deliveries[2].Day)
}
