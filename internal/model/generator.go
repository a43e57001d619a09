package model

import (
	"github.com/fortipass/fortipass-go/internal/breach"
	"github.com/fortipass/fortipass-go/internal/crypto"
)

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse carries a generated password and its analysis.
type GenerateResponse struct {
	Password string                `json:"password"`
	Length   int                   `json:"length"`
	Analysis crypto.StrengthResult `json:"analysis"`
}

// AnalyzeRequest represents a strength analysis request.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// BreachCheckRequest represents a breach lookup request.
type BreachCheckRequest struct {
	Password string `json:"password"`
}

// BreachCheckResponse is the breach lookup result.
type BreachCheckResponse = breach.Result
