package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	tokenString, err := manager.Issue("owner-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := manager.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "owner-123", claims.OwnerID)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "listkeeper", claims.Issuer)
}

func TestVerify_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	tokenString, err := manager.Issue("owner-123", "alice")
	require.NoError(t, err)

	_, err = other.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	tokenString, err := manager.Issue("owner-123", "alice")
	require.NoError(t, err)

	_, err = manager.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Verify("not.a.token")
	assert.Error(t, err)
}
