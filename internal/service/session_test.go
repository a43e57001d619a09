package service

import (
	"context"
	"testing"
	"time"

	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newTestSessionService(t *testing.T, rec ActivityRecorder) *SessionService {
	t.Helper()
	hash, err := crypto.HashPassphraseWithParams("correct horse", crypto.HashParams{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	require.NoError(t, err)
	return NewSessionService(hash, testJWTSecret, time.Hour, rec)
}

func TestSessionOpen(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestSessionService(t, rec)

	resp, err := svc.Open(context.Background(), model.SessionRequest{Passphrase: "correct horse"})
	require.NoError(t, err)

	claims, err := crypto.ValidateToken(resp.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, claims.SessionID())
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	require.Len(t, rec.events, 1)
	assert.Equal(t, model.ActivitySessionOpened, rec.events[0].typ)
}

func TestSessionOpen_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		wantErr    error
	}{
		{"empty", "", ErrPassphraseRequired},
		{"wrong", "battery staple", ErrInvalidPassphrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			svc := newTestSessionService(t, rec)

			_, err := svc.Open(context.Background(), model.SessionRequest{Passphrase: tt.passphrase})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, rec.events)
		})
	}
}

func TestSessionOpen_CorruptHash(t *testing.T) {
	svc := NewSessionService("not-a-hash", testJWTSecret, time.Hour, nil)

	_, err := svc.Open(context.Background(), model.SessionRequest{Passphrase: "anything"})
	assert.ErrorIs(t, err, crypto.ErrInvalidHashFormat)
}
