package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func console(input string) (*ui.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return ui.NewConsole(strings.NewReader(input), out), out
}

func TestPromptIntegerInRange(t *testing.T) {
	scenarios := []struct {
		description   string
		input         string
		expected      int
		expectedError error
	}{
		{"accepts_a_number_in_range", "2\n", 2, nil},
		{"retries_after_invalid_input", "nine\n12\n0\n", 0, nil},
		{"gives_up_after_three_attempts", "a\nb\nc\n1\n", 0, consts.ErrorsRetriesExhausted},
		{"stops_when_the_player_exits", "exit\n", 0, consts.ErrorsExist},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			port, _ := console(scenario.input)
			number, err := ui.PromptIntegerInRange(port, 0, 5, "Pick")
			if scenario.expectedError != nil {
				require.ErrorIs(t, err, scenario.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expected, number)
		})
	}

	t.Run("reports_end_of_input", func(t *testing.T) {
		port, _ := console("")
		_, err := ui.PromptIntegerInRange(port, 0, 5, "Pick")
		require.Error(t, err)
	})
}

func TestPromptColor(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    color.Color
	}{
		{"by_name", "green\n", color.Green},
		{"by_number", "4\n", color.Blue},
		{"after_a_typo", "purple\nYellow\n", color.Yellow},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			port, out := console(scenario.input)
			chosen, err := ui.PromptColor(port)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, chosen)
			require.Contains(t, out.String(), "Select a color")
		})
	}

	t.Run("black_is_not_offered", func(t *testing.T) {
		port, _ := console("black\n5\n0\n")
		_, err := ui.PromptColor(port)
		require.ErrorIs(t, err, consts.ErrorsRetriesExhausted)
	})
}

func TestPromptYesNo(t *testing.T) {
	port, out := console("maybe\nY\n")
	answer, err := ui.PromptYesNo(port, "Challenge?")
	require.NoError(t, err)
	require.True(t, answer)
	require.Contains(t, out.String(), "Challenge? (y/n)")
	require.Contains(t, out.String(), "Invalid input 'maybe' (1/3)")
}
