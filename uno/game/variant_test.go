package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestVariant(t *testing.T) {
	scenarios := []struct {
		description    string
		name           string
		points         int
		expectedPoints int
	}{
		{"standard_keeps_points", "standard", 45, 45},
		{"special_rules_doubles_points", "Special Rules", 45, 90},
		{"quick_game_halves_points_rounding_down", " quick game ", 45, 22},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			variant, err := game.ParseVariant(scenario.name)
			require.NoError(t, err)
			require.Equal(t, scenario.expectedPoints, variant.Apply(scenario.points))
		})
	}

	t.Run("unknown_variant", func(t *testing.T) {
		_, err := game.ParseVariant("speed uno")
		require.Error(t, err)
	})
}
