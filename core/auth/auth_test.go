package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkminh14/uniconsole/core"
)

func TestAdmin_Authenticate(t *testing.T) {
	adm, err := NewAdmin(" Admin ", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "admin", adm.Username)
	assert.NotEqual(t, []byte("s3cret!"), adm.PasswordHash)

	tests := []struct {
		name     string
		username string
		pwd      string
		wantErr  error
	}{
		{name: "valid", username: "admin", pwd: "s3cret!"},
		{name: "username is case insensitive", username: " ADMIN", pwd: "s3cret!"},
		{name: "wrong password", username: "admin", pwd: "secret", wantErr: ErrAuthenticationFailed},
		{name: "wrong username", username: "root", pwd: "s3cret!", wantErr: ErrAuthenticationFailed},
		{name: "empty", wantErr: ErrAuthenticationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, adm.Authenticate(tt.username, tt.pwd))
		})
	}
}

func TestNewAdmin_emptyUsername(t *testing.T) {
	_, err := NewAdmin("  ", "pwd")
	assert.Error(t, err)
}

func TestLoginForm_Validate(t *testing.T) {
	validate, translator := core.NewValidator()

	f := LoginForm{Username: "  admin "}
	err := f.Validate(validate, translator)
	require.Error(t, err)
	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"password": "Mật khẩu không được để trống"}, vErr.Map())
	assert.Equal(t, "admin", f.Username)

	f.Password = "x"
	assert.NoError(t, f.Validate(validate, translator))
}

func TestToken(t *testing.T) {
	key := []byte("secret")
	adm := Admin{Username: "admin"}

	token, err := GenerateToken(NewClaims(adm, "uniconsole", time.Hour), key)
	require.NoError(t, err)

	claims, err := ParseToken(token, key)
	require.NoError(t, err)
	assert.Equal(t, core.Person{ID: "admin", Username: "admin"}, claims.Person())
	assert.Equal(t, "uniconsole", claims.Issuer)

	_, err = ParseToken(token, []byte("other"))
	assert.Error(t, err, "wrong key")

	_, err = ParseToken("garbage", key)
	assert.Error(t, err)

	NowFunc = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := GenerateToken(NewClaims(adm, "uniconsole", time.Hour), key)
	NowFunc = time.Now // reset
	require.NoError(t, err)
	_, err = ParseToken(expired, key)
	assert.Error(t, err, "expired")
}
