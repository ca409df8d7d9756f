package jwt

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret(t *testing.T, n int) string {
	t.Helper()
	key := make([]byte, n)
	for i := range key {
		key[i] = byte(i)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestNew_KeyStrength(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{name: "32 byte key", secret: testSecret(t, 32), wantErr: false},
		{name: "64 byte key", secret: testSecret(t, 64), wantErr: false},
		{name: "too short key", secret: testSecret(t, 16), wantErr: true},
		{name: "empty secret", secret: "", wantErr: true},
		{name: "not base64", secret: "!!not-base64!!", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.secret, time.Hour)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, s)
			} else {
				require.NoError(t, err)
				require.NotNil(t, s)
			}
		})
	}
}

func TestGenerateAndGetSubject_Success(t *testing.T) {
	s, err := New(testSecret(t, 32), time.Hour)
	require.NoError(t, err)

	tok, err := s.GenerateToken("maria@example.com")
	require.NoError(t, err, "GenerateToken should not error")
	require.NotEmpty(t, tok, "token must not be empty")

	subject, err := s.GetSubject(tok)
	require.NoError(t, err, "GetSubject should not error for fresh token")
	assert.Equal(t, "maria@example.com", subject)
}

func TestGetSubject_Table(t *testing.T) {
	secret := testSecret(t, 32)
	otherSecret := testSecret(t, 48)

	makeToken := func(secretB64 string, exp time.Duration) string {
		s, err := New(secretB64, exp)
		require.NoError(t, err)
		tok, err := s.GenerateToken("joao@example.com")
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name  string
		token string
		want  string
		ok    bool
	}{
		{
			name:  "valid token",
			token: makeToken(secret, 5*time.Minute),
			want:  "joao@example.com",
			ok:    true,
		},
		{
			name:  "signature mismatch",
			token: makeToken(otherSecret, 5*time.Minute),
			ok:    false,
		},
		{
			name: "expired beyond leeway",
			// leeway is 60s, so two minutes past expiry must fail
			token: makeToken(secret, -2*time.Minute),
			ok:    false,
		},
		{
			name:  "expired within leeway",
			token: makeToken(secret, -30*time.Second),
			want:  "joao@example.com",
			ok:    true,
		},
		{
			name:  "malformed token string",
			token: "not-a-jwt",
			ok:    false,
		},
		{
			name:  "empty token",
			token: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(secret, time.Hour)
			require.NoError(t, err)

			subject, err := s.GetSubject(tt.token)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, subject)
			} else {
				require.ErrorIs(t, err, ErrInvalidToken)
				assert.Empty(t, subject)
			}
		})
	}
}
