package models

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders a US-style whole-dollar amount: $12,450.
func FormatCurrency(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + group(-n)
	}
	return "$" + group(n)
}

// FormatNumber renders a grouped whole number: 48,920.
func FormatNumber(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-" + group(-n)
	}
	return group(n)
}

// FormatPercent renders one decimal place: 23.4%.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// FormatDecimal renders a number with trailing zeros trimmed, so 3.0
// becomes "3" and 2.25 stays "2.25". Used for compact ratio columns
// such as "3%", "$3.32" and "2.25x".
func FormatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRatio renders a ROAS-style multiplier: 2.25x.
func FormatRatio(v float64) string {
	return FormatDecimal(v) + "x"
}

// FormatSignedPercent keeps the explicit plus sign on gains: +12.5%.
func FormatSignedPercent(v float64) string {
	if v > 0 {
		return "+" + FormatDecimal(v) + "%"
	}
	return FormatDecimal(v) + "%"
}

func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Display colors are configuration, not behavior: plain lookup tables
// keyed by the enums, with a neutral fallback.

var platformColors = map[Platform]string{
	PlatformGoogleAds: "red",
	PlatformFacebook:  "blue",
	PlatformInstagram: "pink",
	PlatformLinkedIn:  "blue",
	PlatformTikTok:    "gray",
	PlatformYouTube:   "red",
}

var statusColors = map[Status]string{
	StatusActive:    "green",
	StatusPaused:    "yellow",
	StatusCompleted: "gray",
	StatusDraft:     "blue",
}

func (p Platform) Color() string {
	if c, ok := platformColors[p]; ok {
		return c
	}
	return "gray"
}

func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "gray"
}

// ChangeGlyph is the trend marker used by terminal output.
func ChangeGlyph(t ChangeType) string {
	if t == ChangeDecrease {
		return "↘"
	}
	return "↗"
}

// ChangeWord is the trend marker used where the glyphs cannot be
// encoded, such as the PDF core fonts.
func ChangeWord(t ChangeType) string {
	if t == ChangeDecrease {
		return "down"
	}
	return "up"
}
