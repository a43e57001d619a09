package breach

import "testing"

func TestCheck(t *testing.T) {
	c := NewChecker()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"listed", "password123", true},
		{"listed uppercase", "PassWord123", true},
		{"numeric", "111111", true},
		{"not listed", "P@ssw0rd1234!", false},
		{"empty", "", false},
		{"prefix of listed", "passw", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Check(tt.password)
			if got.IsBreached != tt.want {
				t.Fatalf("Check(%q).IsBreached = %v, want %v", tt.password, got.IsBreached, tt.want)
			}
			if c.IsBreached(tt.password) != tt.want {
				t.Errorf("IsBreached(%q) = %v, want %v", tt.password, !tt.want, tt.want)
			}

			if !tt.want {
				if got.BreachCount != 0 || got.LastBreach != "" || got.Breaches != nil {
					t.Errorf("Check(%q) = %+v, want zero result", tt.password, got)
				}
				return
			}
			if got.BreachCount < 1000 || got.BreachCount >= 101000 {
				t.Errorf("Check(%q).BreachCount = %d, want in [1000, 101000)", tt.password, got.BreachCount)
			}
			if got.LastBreach != "2023-10-15" {
				t.Errorf("Check(%q).LastBreach = %q, want %q", tt.password, got.LastBreach, "2023-10-15")
			}
			if len(got.Breaches) != 2 {
				t.Errorf("Check(%q).Breaches = %v, want 2 sources", tt.password, got.Breaches)
			}
		})
	}
}

func TestCheckIsStable(t *testing.T) {
	c := NewChecker()
	a := c.Check("Dragon")
	b := c.Check("dragon")
	if a.BreachCount != b.BreachCount {
		t.Errorf("BreachCount differs by case: %d vs %d", a.BreachCount, b.BreachCount)
	}
}

func TestCheckDoesNotShareSources(t *testing.T) {
	c := NewChecker()
	r := c.Check("admin")
	r.Breaches[0] = "mutated"

	if c.Check("admin").Breaches[0] == "mutated" {
		t.Error("Check() result aliases the checker's source list")
	}
}

func TestNewCheckerWithList(t *testing.T) {
	c := NewCheckerWithList([]string{"Hunter2"})
	if !c.IsBreached("hunter2") {
		t.Error("IsBreached(\"hunter2\") = false, want true")
	}
	if c.IsBreached("password") {
		t.Error("custom list should not include built-in entries")
	}
}
