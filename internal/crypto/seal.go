package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")
	ErrCiphertextShort = errors.New("ciphertext too short")
	ErrDecryptFailed   = errors.New("decryption failed")
)

// Key derivation parameters for the vault key. Lighter than the login hash
// since it runs once per process.
const (
	kdfIterations  = 1
	kdfMemory      = 64 * 1024
	kdfParallelism = 4
	kdfSaltLength  = 16
)

// Sealer encrypts vault secrets with XChaCha20-Poly1305 under a key derived
// from a passphrase with Argon2id.
type Sealer struct {
	aead cipher.AEAD
	salt []byte
}

// NewSealer derives a key from passphrase using a fresh random salt.
func NewSealer(passphrase string) (*Sealer, error) {
	salt := make([]byte, kdfSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return NewSealerWithSalt(passphrase, salt)
}

// NewSealerWithSalt derives a key from passphrase and salt.
func NewSealerWithSalt(passphrase string, salt []byte) (*Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	key := argon2.IDKey([]byte(passphrase), salt, kdfIterations, kdfMemory, kdfParallelism, chacha20poly1305.KeySize)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return &Sealer{aead: aead, salt: append([]byte(nil), salt...)}, nil
}

// Salt returns a copy of the key derivation salt.
func (s *Sealer) Salt() []byte {
	return append([]byte(nil), s.salt...)
}

// Seal encrypts plaintext. The output is nonce || ciphertext.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < s.aead.NonceSize()+s.aead.Overhead() {
		return nil, ErrCiphertextShort
	}
	nonce, ciphertext := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}
