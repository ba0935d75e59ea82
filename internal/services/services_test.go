package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabelabs/gabe-web/internal/database"
	"github.com/gabelabs/gabe-web/internal/models"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAndAuthenticateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser(&models.CreateUserRequest{
		Username: "dana",
		Password: "secret123",
		Name:     "Dana",
		AgeRange: "18-24",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Dana", user.Name)
	assert.NotEqual(t, "secret123", user.Password, "password must be hashed")

	got, err := svc.AuthenticateUser(&models.LoginRequest{Username: "dana", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.AuthenticateUser(&models.LoginRequest{Username: "dana", Password: "wrong"})
	assert.Error(t, err)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	req := &models.CreateUserRequest{Username: "dana", Password: "secret123", Name: "Dana"}
	_, err := svc.CreateUser(req)
	require.NoError(t, err)

	_, err = svc.CreateUser(req)
	assert.ErrorContains(t, err, "username already exists")
}

func TestChangePassword(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser(&models.CreateUserRequest{Username: "dana", Password: "secret123", Name: "Dana"})
	require.NoError(t, err)

	assert.Error(t, svc.ChangePassword(user.ID, "wrong", "newsecret"))
	require.NoError(t, svc.ChangePassword(user.ID, "secret123", "newsecret"))

	_, err = svc.AuthenticateUser(&models.LoginRequest{Username: "dana", Password: "newsecret"})
	assert.NoError(t, err)
}

func TestConversationHistory(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	convs := NewConversationService(db)

	user, err := users.CreateUser(&models.CreateUserRequest{Username: "dana", Password: "secret123", Name: "Dana"})
	require.NoError(t, err)

	for _, msg := range []string{"hi", "how are you", "tell me more"} {
		require.NoError(t, convs.SaveExchange(&models.Conversation{
			UserID:       user.ID,
			UserMessage:  msg,
			GabeResponse: "reply to " + msg,
			Mood:         "hopeful",
		}))
	}

	history, err := convs.RecentExchanges(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Oldest first within the window
	assert.Equal(t, "how are you", history[0].UserMessage)
	assert.Equal(t, "tell me more", history[1].UserMessage)

	require.NoError(t, convs.ClearHistory(user.ID))
	history, err = convs.RecentExchanges(user.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}
