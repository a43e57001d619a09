package service

import (
	"context"
	"fmt"

	"github.com/fortipass/fortipass-go/internal/model"
)

// demoEntries is the sample vault loaded when demo data is enabled.
var demoEntries = []model.VaultEntryRequest{
	{
		Title:    "GitHub",
		Username: "student@university.edu",
		Password: "MySecureGitHub123!",
		Website:  "github.com",
		Category: model.CategoryWork,
		Favorite: true,
		Tags:     []string{"coding", "portfolio"},
	},
	{
		Title:    "Netflix",
		Username: "student@gmail.com",
		Password: "WatchMovies456#",
		Website:  "netflix.com",
		Category: model.CategoryEntertainment,
		Tags:     []string{"streaming"},
	},
	{
		Title:    "University Portal",
		Username: "john.doe",
		Password: "password123",
		Website:  "portal.university.edu",
		Category: model.CategoryEducation,
		Tags:     []string{"school", "grades"},
	},
	{
		Title:    "Instagram",
		Username: "@johndoe_student",
		Password: "InstaSecure789$",
		Website:  "instagram.com",
		Category: model.CategorySocial,
		Favorite: true,
		Tags:     []string{"social-media"},
	},
	{
		Title:    "Bank Account",
		Username: "john.doe@email.com",
		Password: "BankSafe2024!@#",
		Website:  "mybank.com",
		Category: model.CategoryBanking,
		Favorite: true,
		Tags:     []string{"finance", "important"},
	},
	{
		Title:    "Spotify",
		Username: "musiclover123",
		Password: "MusicLife456",
		Website:  "spotify.com",
		Category: model.CategoryEntertainment,
		Tags:     []string{"music", "streaming"},
	},
}

// SeedDemo adds the sample entries to the vault and returns how many were added.
func (s *VaultService) SeedDemo(ctx context.Context) (int, error) {
	for i, req := range demoEntries {
		if _, err := s.AddEntry(ctx, req); err != nil {
			return i, fmt.Errorf("seeding %s: %w", req.Title, err)
		}
	}
	return len(demoEntries), nil
}
