package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freshfold/freshfold/pkg/jwt"
)

func TestCreateVerify(t *testing.T) {
	j := jwt.New([]byte("secret"))

	token, err := j.Create(map[string]string{
		"UserID": "42",
		"Role":   "WASHER",
	})
	assert.NoError(t, err)

	userID, ok, err := j.Verify(token, "UserID")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", userID)

	role, ok, err := j.Verify(token, "Role")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "WASHER", role)
}

func TestVerifyMissingClaim(t *testing.T) {
	j := jwt.New([]byte("secret"))

	token, err := j.Create(map[string]string{"UserID": "42"})
	assert.NoError(t, err)

	_, ok, err := j.Verify(token, "Role")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := jwt.New([]byte("secret")).Create(map[string]string{"UserID": "42"})
	assert.NoError(t, err)

	_, _, err = jwt.New([]byte("other")).Verify(token, "UserID")
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, _, err := jwt.New([]byte("secret")).Verify("not.a.token", "UserID")
	assert.Error(t, err)
}
