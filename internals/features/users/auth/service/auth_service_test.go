package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "quranku_backend/internals/features/users/user/model"
)

func TestComputeRefreshHash(t *testing.T) {
	a := computeRefreshHash("tok", "secret")
	b := computeRefreshHash("tok", "secret")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, computeRefreshHash("tok", "other"))
	assert.NotEqual(t, a, computeRefreshHash("tok2", "secret"))
}

func TestBuildAccessClaims(t *testing.T) {
	u := &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Aisha",
		Email:    "aisha@example.com",
		Role:     "student",
	}
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	claims := buildAccessClaims(u, now)

	assert.Equal(t, u.ID.String(), claims["id"])
	assert.Equal(t, u.ID.String(), claims["sub"])
	assert.Equal(t, "Aisha", claims["user_name"])
	assert.Equal(t, "aisha@example.com", claims["email"])
	assert.Equal(t, "student", claims["role"])

	exp, ok := claims["exp"].(int64)
	require.True(t, ok)
	assert.Equal(t, now.Add(accessTTLDefault).Unix(), exp)
}

func TestBuildRefreshClaimsTyped(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	claims := buildRefreshClaims(id, now)

	assert.Equal(t, "refresh", claims["typ"])
	assert.Equal(t, id.String(), claims["sub"])
	exp, ok := claims["exp"].(int64)
	require.True(t, ok)
	assert.Equal(t, now.Add(refreshTTLDefault).Unix(), exp)
}
