package model

import (
	"time"

	"github.com/fortipass/fortipass-go/internal/crypto"
)

// Category groups vault entries.
type Category string

const (
	CategorySocial        Category = "social"
	CategoryBanking       Category = "banking"
	CategoryEducation     Category = "education"
	CategoryEntertainment Category = "entertainment"
	CategoryWork          Category = "work"
	CategoryOther         Category = "other"
)

// CategoryAll matches every category when filtering.
const CategoryAll = "all"

// VaultEntry is a stored credential. SealedPassword is never serialized.
type VaultEntry struct {
	ID             string
	Title          string
	Username       string
	SealedPassword []byte
	Website        string
	Category       Category
	Strength       int
	Notes          string
	Favorite       bool
	Compromised    bool
	Tags           []string
	LastUpdated    time.Time
}

// VaultEntryRequest represents a new vault entry.
type VaultEntryRequest struct {
	Title    string   `json:"title" validate:"required,max=100"`
	Username string   `json:"username" validate:"max=255"`
	Password string   `json:"password" validate:"required,max=1024"`
	Website  string   `json:"website" validate:"omitempty,hostname_rfc1123,max=253"`
	Category Category `json:"category" validate:"omitempty,oneof=social banking education entertainment work other"`
	Notes    string   `json:"notes" validate:"max=2000"`
	Favorite bool     `json:"favorite"`
	Tags     []string `json:"tags" validate:"max=20,dive,required,max=32"`
}

// VaultEntryResponse is a vault entry without its password.
type VaultEntryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Username    string    `json:"username"`
	Website     string    `json:"website"`
	Category    Category  `json:"category"`
	Strength    int       `json:"strength"`
	Notes       string    `json:"notes,omitempty"`
	Favorite    bool      `json:"favorite"`
	Compromised bool      `json:"compromised"`
	Tags        []string  `json:"tags"`
	LastUpdated time.Time `json:"last_updated"`
}

// RevealResponse carries a decrypted password.
type RevealResponse struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// VaultFilter narrows a vault listing.
type VaultFilter struct {
	Search   string
	Category string
}

// EntryAudit is the security assessment of a single entry.
type EntryAudit struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Score        int             `json:"score"`
	Strength     crypto.Strength `json:"strength"`
	PatternScore int             `json:"pattern_score"`
	Compromised  bool            `json:"compromised"`
	Reused       bool            `json:"reused"`
}

// SecurityMetrics summarizes the security posture of the vault.
type SecurityMetrics struct {
	TotalPasswords       int              `json:"total_passwords"`
	StrongPasswords      int              `json:"strong_passwords"`
	WeakPasswords        int              `json:"weak_passwords"`
	CompromisedPasswords int              `json:"compromised_passwords"`
	ReusedPasswords      int              `json:"reused_passwords"`
	AverageStrength      float64          `json:"average_strength"`
	SecurityScore        int              `json:"security_score"`
	CategoryBreakdown    map[Category]int `json:"category_breakdown"`
	LastBreachCheck      time.Time        `json:"last_breach_check"`
	Entries              []EntryAudit     `json:"entries"`
}
