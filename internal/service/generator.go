package service

import (
	"context"
	"fmt"

	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/fortipass/fortipass-go/internal/model"
)

// GeneratorService handles password generation and strength analysis.
type GeneratorService struct {
	activity ActivityRecorder
}

// NewGeneratorService creates a new GeneratorService. activity may be nil.
func NewGeneratorService(activity ActivityRecorder) *GeneratorService {
	return &GeneratorService{activity: recorderOrNoop(activity)}
}

// Generate produces a password based on the given request and analyzes it.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultOptions().Length
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	s.activity.Record(ctx, model.ActivityPasswordGenerated, model.SeverityLow,
		fmt.Sprintf("Generated a %d character password", opts.Length))

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Analysis: crypto.Analyze(password),
	}, nil
}

// Analyze scores a password.
func (s *GeneratorService) Analyze(ctx context.Context, req model.AnalyzeRequest) crypto.StrengthResult {
	result := crypto.Analyze(req.Password)

	s.activity.Record(ctx, model.ActivityPasswordAnalyzed, model.SeverityLow,
		fmt.Sprintf("Analyzed a password: %s", result.Strength))

	return result
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
