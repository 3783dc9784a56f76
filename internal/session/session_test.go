package session

import (
	"testing"
	"time"

	"mojicode/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, err := mgr.Issue("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := mgr.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestValidateRejectsGarbage(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	_, err := mgr.Validate("not-a-token")
	assert.True(t, models.IsInvalidCredentials(err))
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := mgr.Issue("a@x.com")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.True(t, models.IsInvalidCredentials(err))
}

func TestValidateRejectsExpired(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)

	token, err := mgr.Issue("a@x.com")
	require.NoError(t, err)

	_, err = mgr.Validate(token)
	assert.True(t, models.IsInvalidCredentials(err))
}

func TestRefreshKeepsSubject(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, err := mgr.Issue("a@x.com")
	require.NoError(t, err)

	refreshed, err := mgr.Refresh(token)
	require.NoError(t, err)

	email, err := mgr.Validate(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}
