package service

import (
	"context"
	"errors"
	"time"

	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/google/uuid"
)

var (
	ErrPassphraseRequired = errors.New("passphrase is required")
	ErrInvalidPassphrase  = errors.New("invalid passphrase")
)

// SessionService opens operator sessions.
type SessionService struct {
	passphraseHash string
	jwtSecret      string
	jwtExpiry      time.Duration
	activity       ActivityRecorder
	now            func() time.Time
}

// NewSessionService creates a new SessionService. passphraseHash is an
// Argon2id PHC string as produced by crypto.HashPassphrase.
func NewSessionService(passphraseHash, secret string, expiry time.Duration, activity ActivityRecorder) *SessionService {
	return &SessionService{
		passphraseHash: passphraseHash,
		jwtSecret:      secret,
		jwtExpiry:      expiry,
		activity:       recorderOrNoop(activity),
		now:            time.Now,
	}
}

// Open verifies the operator passphrase and issues a session token.
func (s *SessionService) Open(ctx context.Context, req model.SessionRequest) (model.SessionResponse, error) {
	if req.Passphrase == "" {
		return model.SessionResponse{}, ErrPassphraseRequired
	}

	match, err := crypto.VerifyPassphrase(req.Passphrase, s.passphraseHash)
	if err != nil {
		return model.SessionResponse{}, err
	}
	if !match {
		return model.SessionResponse{}, ErrInvalidPassphrase
	}

	sessionID := uuid.NewString()
	expiresAt := s.now().Add(s.jwtExpiry).UTC()

	token, err := crypto.GenerateToken(sessionID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.SessionResponse{}, err
	}

	s.activity.Record(ctx, model.ActivitySessionOpened, model.SeverityMedium, "Operator session opened")

	return model.SessionResponse{
		Token:     token,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}, nil
}
