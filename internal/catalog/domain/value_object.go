package domain

import (
	"fmt"
	"strings"
)

// Pricing is the single authoritative pricing model for a skill.
type Pricing string

const (
	PricingOpenSource Pricing = "open_source"
	PricingFree       Pricing = "free"
	PricingPaid       Pricing = "paid"
)

func (p Pricing) String() string {
	return string(p)
}

func ParsePricing(s string) (Pricing, error) {
	switch p := Pricing(strings.ToLower(strings.TrimSpace(s))); p {
	case PricingOpenSource, PricingFree, PricingPaid:
		return p, nil
	case "oss", "open-source":
		return PricingOpenSource, nil
	default:
		return "", fmt.Errorf("invalid pricing: %s (supported: open_source, free, paid)", s)
	}
}

type IconKind string

const (
	IconNone  IconKind = "none"
	IconImage IconKind = "image"
	IconText  IconKind = "text"
)

const DefaultIcon = "📦"

var categoryIcons = map[CategoryID]string{
	"navigation":   "🧭",
	"manipulation": "🤖",
	"vision":       "👁️",
	"speech":       "💬",
	"planning":     "🗺️",
	"control":      "🎮",
	"perception":   "📡",
	"integration":  "🔗",
}

func CategoryIcon(id CategoryID) string {
	if icon, ok := categoryIcons[id]; ok {
		return icon
	}
	return DefaultIcon
}
