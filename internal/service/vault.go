package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/fortipass/fortipass-go/internal/model"
	"github.com/fortipass/fortipass-go/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
)

var (
	ErrInvalidEntry    = errors.New("invalid vault entry")
	ErrInvalidCategory = errors.New("unknown category")
	ErrEntryNotFound   = errors.New("vault entry not found")
)

const (
	// Entries below this zxcvbn score (0-4) are treated as weak regardless of
	// their heuristic score.
	minPatternScore = 2

	// zxcvbn's matching cost grows steeply with length, so only this many
	// leading runes are pattern-scored.
	maxPatternRunes = 64
)

// VaultStore persists vault entries. Implementations own their storage;
// the service never holds entries outside a single call.
type VaultStore interface {
	List(ctx context.Context) ([]model.VaultEntry, error)
	Get(ctx context.Context, id string) (model.VaultEntry, error)
	Add(ctx context.Context, entry model.VaultEntry) error
	Remove(ctx context.Context, id string) error
}

// Sealer encrypts and decrypts stored passwords.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// VaultService handles vault entry business logic.
type VaultService struct {
	store    VaultStore
	sealer   Sealer
	checker  BreachChecker
	activity ActivityRecorder
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

// NewVaultService creates a new VaultService. activity may be nil.
func NewVaultService(store VaultStore, sealer Sealer, checker BreachChecker, activity ActivityRecorder) *VaultService {
	return &VaultService{
		store:    store,
		sealer:   sealer,
		checker:  checker,
		activity: recorderOrNoop(activity),
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// AddEntry validates, scores and seals a new entry, then stores it.
func (s *VaultService) AddEntry(ctx context.Context, req model.VaultEntryRequest) (model.VaultEntryResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.VaultEntryResponse{}, fmt.Errorf("%w: %s", ErrInvalidEntry, validationMessage(err))
	}
	if req.Category == "" {
		req.Category = model.CategoryOther
	}

	sealed, err := s.sealer.Seal([]byte(req.Password))
	if err != nil {
		return model.VaultEntryResponse{}, fmt.Errorf("sealing password: %w", err)
	}

	entry := model.VaultEntry{
		ID:             s.newID(),
		Title:          req.Title,
		Username:       req.Username,
		SealedPassword: sealed,
		Website:        req.Website,
		Category:       req.Category,
		Strength:       crypto.Analyze(req.Password).Score,
		Notes:          req.Notes,
		Favorite:       req.Favorite,
		Compromised:    s.checker.IsBreached(req.Password),
		Tags:           slices.Clone(req.Tags),
		LastUpdated:    s.now().UTC(),
	}

	if err := s.store.Add(ctx, entry); err != nil {
		return model.VaultEntryResponse{}, err
	}

	severity := model.SeverityLow
	if entry.Compromised {
		severity = model.SeverityHigh
	}
	s.activity.Record(ctx, model.ActivityEntryAdded, severity, fmt.Sprintf("Added %s to the vault", entry.Title))

	return entryToResponse(entry), nil
}

// ListEntries returns entries matching filter in insertion order.
func (s *VaultService) ListEntries(ctx context.Context, filter model.VaultFilter) ([]model.VaultEntryResponse, error) {
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	if category != "" && category != model.CategoryAll && !validCategory(model.Category(category)) {
		return nil, ErrInvalidCategory
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := []model.VaultEntryResponse{}
	for _, e := range entries {
		if category != "" && category != model.CategoryAll && string(e.Category) != category {
			continue
		}
		if search != "" && !matchesSearch(e, search) {
			continue
		}
		result = append(result, entryToResponse(e))
	}
	return result, nil
}

// RevealPassword decrypts the password of an entry.
func (s *VaultService) RevealPassword(ctx context.Context, id string) (model.RevealResponse, error) {
	entry, err := s.getEntry(ctx, id)
	if err != nil {
		return model.RevealResponse{}, err
	}

	plaintext, err := s.sealer.Open(entry.SealedPassword)
	if err != nil {
		return model.RevealResponse{}, fmt.Errorf("opening password: %w", err)
	}

	return model.RevealResponse{ID: entry.ID, Password: string(plaintext)}, nil
}

// RemoveEntry deletes an entry.
func (s *VaultService) RemoveEntry(ctx context.Context, id string) error {
	entry, err := s.getEntry(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Remove(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return err
	}

	s.activity.Record(ctx, model.ActivityEntryRemoved, model.SeverityMedium, fmt.Sprintf("Removed %s from the vault", entry.Title))
	return nil
}

// Metrics audits every entry and summarizes the vault.
func (s *VaultService) Metrics(ctx context.Context) (model.SecurityMetrics, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return model.SecurityMetrics{}, err
	}

	metrics := model.SecurityMetrics{
		TotalPasswords:    len(entries),
		CategoryBreakdown: make(map[model.Category]int),
		LastBreachCheck:   s.now().UTC(),
		Entries:           make([]model.EntryAudit, 0, len(entries)),
	}

	plaintexts := make([]string, len(entries))
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		p, err := s.sealer.Open(e.SealedPassword)
		if err != nil {
			return model.SecurityMetrics{}, fmt.Errorf("opening password of %s: %w", e.ID, err)
		}
		plaintexts[i] = string(p)
		seen[plaintexts[i]]++
	}

	total := 0
	for i, e := range entries {
		analysis := crypto.Analyze(plaintexts[i])
		pattern := zxcvbn.PasswordStrength(patternPrefix(plaintexts[i]), []string{e.Title, e.Username, e.Website})

		audit := model.EntryAudit{
			ID:           e.ID,
			Title:        e.Title,
			Score:        analysis.Score,
			Strength:     analysis.Strength,
			PatternScore: pattern.Score,
			Compromised:  e.Compromised || s.checker.IsBreached(plaintexts[i]),
			Reused:       seen[plaintexts[i]] > 1,
		}

		switch {
		case audit.Strength == crypto.StrengthVeryWeak || audit.Strength == crypto.StrengthWeak || audit.PatternScore < minPatternScore:
			metrics.WeakPasswords++
		case audit.Strength == crypto.StrengthGood || audit.Strength == crypto.StrengthStrong:
			metrics.StrongPasswords++
		}
		if audit.Compromised {
			metrics.CompromisedPasswords++
		}
		if audit.Reused {
			metrics.ReusedPasswords++
		}

		total += analysis.Score
		metrics.CategoryBreakdown[e.Category]++
		metrics.Entries = append(metrics.Entries, audit)
	}

	metrics.SecurityScore = 100
	if len(entries) > 0 {
		avg := float64(total) / float64(len(entries))
		metrics.AverageStrength = math.Round(avg*10) / 10
		score := math.Round(avg - 10*float64(metrics.CompromisedPasswords) - 5*float64(metrics.ReusedPasswords))
		metrics.SecurityScore = int(max(0, min(100, score)))
	}

	return metrics, nil
}

func (s *VaultService) getEntry(ctx context.Context, id string) (model.VaultEntry, error) {
	entry, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return model.VaultEntry{}, ErrEntryNotFound
		}
		return model.VaultEntry{}, err
	}
	return entry, nil
}

// patternPrefix returns at most maxPatternRunes leading runes of password.
func patternPrefix(password string) string {
	n := 0
	for i := range password {
		if n == maxPatternRunes {
			return password[:i]
		}
		n++
	}
	return password
}

func matchesSearch(e model.VaultEntry, search string) bool {
	return strings.Contains(strings.ToLower(e.Title), search) ||
		strings.Contains(strings.ToLower(e.Username), search) ||
		strings.Contains(strings.ToLower(e.Website), search)
}

func validCategory(c model.Category) bool {
	switch c {
	case model.CategorySocial, model.CategoryBanking, model.CategoryEducation,
		model.CategoryEntertainment, model.CategoryWork, model.CategoryOther:
		return true
	}
	return false
}

// validationMessage flattens validator errors into "field: rule" pairs.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(msgs, ", ")
}

// entryToResponse converts a stored entry to its API form.
func entryToResponse(e model.VaultEntry) model.VaultEntryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.VaultEntryResponse{
		ID:          e.ID,
		Title:       e.Title,
		Username:    e.Username,
		Website:     e.Website,
		Category:    e.Category,
		Strength:    e.Strength,
		Notes:       e.Notes,
		Favorite:    e.Favorite,
		Compromised: e.Compromised,
		Tags:        tags,
		LastUpdated: e.LastUpdated,
	}
}
