package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength = 8
	MaxLength = 50
)

// ErrInvalidConfiguration is returned for any generator options that cannot
// produce a password. The more specific errors below wrap it.
var ErrInvalidConfiguration = errors.New("invalid generator configuration")

var (
	ErrLengthTooShort   = fmt.Errorf("%w: password length must be at least %d", ErrInvalidConfiguration, MinLength)
	ErrLengthTooLong    = fmt.Errorf("%w: password length must be at most %d", ErrInvalidConfiguration, MaxLength)
	ErrNoCharacterTypes = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidConfiguration)
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Alphabet returns the characters enabled by opts, in the order
// lowercase, uppercase, numbers, symbols.
func (o GeneratorOptions) Alphabet() string {
	var pool string
	if o.Lowercase {
		pool += lowercaseChars
	}
	if o.Uppercase {
		pool += uppercaseChars
	}
	if o.Numbers {
		pool += numberChars
	}
	if o.Symbols {
		pool += symbolChars
	}
	return pool
}

// Validate reports whether the options can produce a password.
func (o GeneratorOptions) Validate() error {
	if o.Length < MinLength {
		return ErrLengthTooShort
	}
	if o.Length > MaxLength {
		return ErrLengthTooLong
	}
	if o.Alphabet() == "" {
		return ErrNoCharacterTypes
	}
	return nil
}

// Generate creates a cryptographically secure random password based on the given options.
func Generate(opts GeneratorOptions) (string, error) {
	return GenerateFrom(rand.Reader, opts)
}

// GenerateFrom is Generate with an explicit randomness source. Every
// character is an independent uniform draw from the enabled alphabet.
func GenerateFrom(r io.Reader, opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	pool := opts.Alphabet()
	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(r, pool)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a uniformly random character from charset.
func randChar(r io.Reader, charset string) (byte, error) {
	n, err := rand.Int(r, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()%int64(len(charset))], nil
}
