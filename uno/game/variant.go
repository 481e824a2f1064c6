package game

import (
	"fmt"
	"strings"
)

// Variant changes how many points a round winner is credited with.
type Variant string

const (
	VariantStandard     Variant = "standard"
	VariantSpecialRules Variant = "special rules"
	VariantQuickGame    Variant = "quick game"
)

var Variants = []Variant{VariantStandard, VariantSpecialRules, VariantQuickGame}

func ParseVariant(name string) (Variant, error) {
	normalized := Variant(strings.ToLower(strings.TrimSpace(name)))
	for _, variant := range Variants {
		if variant == normalized {
			return variant, nil
		}
	}
	return "", fmt.Errorf("unknown game variant '%s'", name)
}

func (v Variant) Apply(points int) int {
	switch v {
	case VariantSpecialRules:
		return points * 2
	case VariantQuickGame:
		return points / 2
	default:
		return points
	}
}

func (v Variant) String() string {
	return string(v)
}
