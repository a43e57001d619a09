package crypto

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Strength is the category a strength score falls into.
type Strength string

const (
	StrengthVeryWeak Strength = "very-weak"
	StrengthWeak     Strength = "weak"
	StrengthFair     Strength = "fair"
	StrengthGood     Strength = "good"
	StrengthStrong   Strength = "strong"
)

// Charset sizes used for entropy estimation.
const (
	lowercaseSize = 26
	uppercaseSize = 26
	numberSize    = 10
	symbolSize    = 32
)

// GuessesPerSecond is the assumed offline attack throughput.
const GuessesPerSecond = 1e9

const (
	secondsPerMinute  = 60
	secondsPerHour    = 3600
	secondsPerDay     = 86400
	secondsPerYear    = 31536000
	secondsPerCentury = 31536000000

	// 2^1023 is the largest power of two a float64 holds.
	maxGuessExponent = 1023

	// Larger century counts are shown with three significant digits.
	maxPlainCenturies = 1e15
)

// StrengthResult is the outcome of analyzing a single password.
type StrengthResult struct {
	Score      int      `json:"score"`
	Strength   Strength `json:"strength"`
	Feedback   []string `json:"feedback"`
	Entropy    int      `json:"entropy"`
	TimeToHack string   `json:"time_to_hack"`
}

type charClasses struct {
	lower, upper, digit, special bool
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.special = true
		}
	}
	return c
}

func (c charClasses) size() int {
	size := 0
	if c.lower {
		size += lowercaseSize
	}
	if c.upper {
		size += uppercaseSize
	}
	if c.digit {
		size += numberSize
	}
	if c.special {
		size += symbolSize
	}
	return size
}

// Analyze scores password against the strength heuristics and estimates
// its entropy and brute-force time. It never fails.
func Analyze(password string) StrengthResult {
	length := utf8.RuneCountInString(password)
	classes := classify(password)

	score := 0
	feedback := []string{}

	switch {
	case length >= 12:
		score += 25
	case length >= 8:
		score += 15
	default:
		feedback = append(feedback, "Use at least 8 characters")
	}

	if classes.lower {
		score += 15
	} else {
		feedback = append(feedback, "Add lowercase letters")
	}
	if classes.upper {
		score += 15
	} else {
		feedback = append(feedback, "Add uppercase letters")
	}
	if classes.digit {
		score += 15
	} else {
		feedback = append(feedback, "Add numbers")
	}
	if classes.special {
		score += 20
	} else {
		feedback = append(feedback, "Add special characters")
	}

	if length >= 16 {
		score += 10
	}
	if !hasRepeatedRun(password, 3) {
		score += 5
	} else {
		feedback = append(feedback, "Avoid repeated characters")
	}

	score = min(score, 100)
	entropy := entropyBits(length, classes.size())

	return StrengthResult{
		Score:      score,
		Strength:   strengthFor(score),
		Feedback:   feedback,
		Entropy:    int(math.Round(entropy)),
		TimeToHack: TimeToCrack(entropy),
	}
}

// CharsetSize returns the size of the character pool implied by the classes
// present in password.
func CharsetSize(password string) int {
	return classify(password).size()
}

// Entropy returns the unrounded entropy estimate of password in bits.
func Entropy(password string) float64 {
	return entropyBits(utf8.RuneCountInString(password), CharsetSize(password))
}

// entropyBits computes log2(size^length) without the intermediate power.
func entropyBits(length, size int) float64 {
	if size == 0 || length == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(size))
}

func strengthFor(score int) Strength {
	switch {
	case score >= 85:
		return StrengthStrong
	case score >= 70:
		return StrengthGood
	case score >= 50:
		return StrengthFair
	case score >= 25:
		return StrengthWeak
	default:
		return StrengthVeryWeak
	}
}

// TimeToCrack formats the average time needed to exhaust half of a keyspace
// of the given entropy at GuessesPerSecond.
func TimeToCrack(entropy float64) string {
	exp := entropy - 1
	if exp > maxGuessExponent {
		exp = maxGuessExponent
	}
	seconds := math.Pow(2, exp) / GuessesPerSecond

	switch {
	case seconds < secondsPerMinute:
		return "Instantly"
	case seconds < secondsPerHour:
		return formatUnits(seconds/secondsPerMinute, "minutes")
	case seconds < secondsPerDay:
		return formatUnits(seconds/secondsPerHour, "hours")
	case seconds < secondsPerYear:
		return formatUnits(seconds/secondsPerDay, "days")
	case seconds < secondsPerCentury:
		return formatUnits(seconds/secondsPerYear, "years")
	default:
		centuries := seconds / secondsPerCentury
		if centuries >= maxPlainCenturies {
			return strconv.FormatFloat(centuries, 'g', 3, 64) + " centuries"
		}
		return formatUnits(centuries, "centuries")
	}
}

func formatUnits(n float64, unit string) string {
	return strconv.FormatFloat(math.Round(n), 'f', 0, 64) + " " + unit
}

// hasRepeatedRun reports whether s contains n or more identical consecutive
// characters. Line terminators never count towards a run.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if isLineTerminator(r) {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
