package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khayt/stylist-bot/internal/models"
)

func TestMemoryStorageSessionRoundTrip(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	// unknown user gets a fresh empty session, not an error.
	session, err := s.GetSession(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.UserID)
	assert.True(t, session.Preferences.Empty())

	occ := models.OccasionParty
	session.Preferences.Occasion = &occ
	require.NoError(t, s.SaveSession(ctx, session))

	loaded, err := s.GetSession(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, loaded.Preferences.Occasion)
	assert.Equal(t, models.OccasionParty, *loaded.Preferences.Occasion)
}

func TestMemoryStorageResetSession(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	occ := models.OccasionGym
	require.NoError(t, s.SaveSession(ctx, &models.Session{
		UserID:      7,
		Preferences: models.Preferences{Occasion: &occ},
	}))

	require.NoError(t, s.ResetSession(ctx, 7))

	loaded, err := s.GetSession(ctx, 7)
	require.NoError(t, err)
	assert.True(t, loaded.Preferences.Empty())
}

func TestMemoryStorageRecentMessagesNewestFirst(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.AppendMessage(ctx, &models.Message{
			ID:      fmt.Sprintf("msg-%d", i),
			UserID:  1,
			Role:    "user",
			Content: fmt.Sprintf("message %d", i),
		}))
	}

	messages, err := s.RecentMessages(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "msg-4", messages[0].ID)
	assert.Equal(t, "msg-3", messages[1].ID)
	assert.Equal(t, "msg-2", messages[2].ID)
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := int64(i % 4)
			occ := models.OccasionOuting
			_ = s.SaveSession(ctx, &models.Session{
				UserID:      userID,
				Preferences: models.Preferences{Occasion: &occ},
			})
			_, _ = s.GetSession(ctx, userID)
			_ = s.AppendMessage(ctx, &models.Message{
				ID:     fmt.Sprintf("m-%d", i),
				UserID: userID,
				Role:   "user",
			})
		}(i)
	}
	wg.Wait()

	for userID := int64(0); userID < 4; userID++ {
		session, err := s.GetSession(ctx, userID)
		require.NoError(t, err)
		assert.NotNil(t, session.Preferences.Occasion)
	}
}
