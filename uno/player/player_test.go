package player_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedGen always answers the same number, capped to the requested range.
type fixedGen int

func (g fixedGen) Intn(n int) int {
	if int(g) >= n {
		return n - 1
	}
	return int(g)
}

func stateWith(top *card.Card, hand ...*card.Card) game.State {
	return game.State{
		PlayerName:        "Alice",
		Round:             1,
		TopCard:           top,
		CurrentPlayerHand: hand,
	}
}

func TestParseDifficulty(t *testing.T) {
	scenarios := []struct {
		difficulty string
		expected   player.Strategy
	}{
		{"easy", player.StrategyRandom},
		{"Medium", player.StrategyActionFirst},
		{" hard ", player.StrategyHighestPoints},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.difficulty, func(t *testing.T) {
			strategy, err := player.ParseDifficulty(scenario.difficulty)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, strategy)
		})
	}

	_, err := player.ParseDifficulty("nightmare")
	require.ErrorIs(t, err, consts.ErrorsDifficultyInvalid)
}

func TestBotChooseAction(t *testing.T) {
	top := card.NewNumberCard(color.Red, 7)
	scenarios := []struct {
		description string
		strategy    player.Strategy
		hand        []*card.Card
		expected    game.Decision
	}{
		{
			description: "draws_without_a_legal_card",
			strategy:    player.StrategyHighestPoints,
			hand:        []*card.Card{card.NewNumberCard(color.Blue, 3)},
			expected:    game.Draw(),
		},
		{
			description: "random_plays_a_legal_card",
			strategy:    player.StrategyRandom,
			hand:        []*card.Card{card.NewNumberCard(color.Blue, 3), card.NewNumberCard(color.Red, 2)},
			expected:    game.PlayAt(1),
		},
		{
			description: "action_first_prefers_action_cards",
			strategy:    player.StrategyActionFirst,
			hand:        []*card.Card{card.NewNumberCard(color.Red, 5), card.NewSkipCard(color.Red), card.NewNumberCard(color.Blue, 3)},
			expected:    game.PlayAt(1),
		},
		{
			description: "action_first_falls_back_to_numbers",
			strategy:    player.StrategyActionFirst,
			hand:        []*card.Card{card.NewNumberCard(color.Blue, 3), card.NewNumberCard(color.Red, 5)},
			expected:    game.PlayAt(1),
		},
		{
			description: "highest_points_sheds_the_wild",
			strategy:    player.StrategyHighestPoints,
			hand:        []*card.Card{card.NewNumberCard(color.Red, 5), card.NewDrawTwoCard(color.Red), card.NewWildCard()},
			expected:    game.PlayAt(2),
		},
		{
			description: "highest_points_keeps_the_first_on_ties",
			strategy:    player.StrategyHighestPoints,
			hand:        []*card.Card{card.NewSkipCard(color.Red), card.NewReverseCard(color.Red)},
			expected:    game.PlayAt(0),
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			bot := player.NewBot(scenario.strategy, fixedGen(0))
			decision := bot.ChooseAction(stateWith(top, scenario.hand...))
			require.Equal(t, scenario.expected, decision)
		})
	}
}

func TestBotChooseColor(t *testing.T) {
	scenarios := []struct {
		description string
		hand        []*card.Card
		expected    color.Color
	}{
		{
			description: "most_frequent_color",
			hand: []*card.Card{
				card.NewNumberCard(color.Blue, 1),
				card.NewNumberCard(color.Blue, 2),
				card.NewNumberCard(color.Green, 3),
				card.NewWildCard(),
				card.NewWildDrawFourCard(),
			},
			expected: color.Blue,
		},
		{
			description: "ties_follow_the_color_order",
			hand:        []*card.Card{card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Yellow, 2)},
			expected:    color.Yellow,
		},
		{
			description: "only_wilds_left",
			hand:        []*card.Card{card.NewWildCard()},
			expected:    color.Green,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			bot := player.NewBot(player.StrategyRandom, fixedGen(2))
			require.Equal(t, scenario.expected, bot.ChooseColor(scenario.hand))
		})
	}
}

func TestBotDecisions(t *testing.T) {
	drawn := card.NewNumberCard(color.Red, 1)
	state := stateWith(card.NewNumberCard(color.Red, 7), drawn)

	t.Run("never_challenges", func(t *testing.T) {
		for _, strategy := range []player.Strategy{player.StrategyRandom, player.StrategyActionFirst, player.StrategyHighestPoints} {
			require.False(t, player.NewBot(strategy, fixedGen(0)).ConfirmChallenge(state))
		}
	})

	t.Run("smart_bots_always_declare_and_play_drawn_cards", func(t *testing.T) {
		bot := player.NewBot(player.StrategyHighestPoints, fixedGen(999999))
		require.True(t, bot.DecideDeclareLast(1))
		require.True(t, bot.PlayDrawnCard(drawn, state))
	})

	t.Run("random_bot_sometimes_forgets", func(t *testing.T) {
		require.False(t, player.NewBot(player.StrategyRandom, fixedGen(0)).DecideDeclareLast(1))
		require.True(t, player.NewBot(player.StrategyRandom, fixedGen(999999)).DecideDeclareLast(1))
	})

	t.Run("random_bot_keeps_some_drawn_cards", func(t *testing.T) {
		require.True(t, player.NewBot(player.StrategyRandom, fixedGen(0)).PlayDrawnCard(drawn, state))
		require.False(t, player.NewBot(player.StrategyRandom, fixedGen(999999)).PlayDrawnCard(drawn, state))
	})

	t.Run("rates_can_be_tuned", func(t *testing.T) {
		bot := player.NewBot(player.StrategyActionFirst, fixedGen(0)).SetDrawnCardRate(0).SetForgetRate(1)
		require.False(t, bot.PlayDrawnCard(drawn, state))
		require.False(t, bot.DecideDeclareLast(1))
	})
}

func TestHumanPlayer(t *testing.T) {
	state := stateWith(
		card.NewNumberCard(color.Red, 7),
		card.NewNumberCard(color.Red, 1),
		card.NewNumberCard(color.Blue, 2),
		card.NewWildCard(),
	)

	human := func(input string) (*player.HumanPlayer, *bytes.Buffer) {
		out := &bytes.Buffer{}
		return player.NewHumanPlayer("Alice", ui.NewConsole(strings.NewReader(input), out)), out
	}

	t.Run("plays_the_selected_card", func(t *testing.T) {
		p, out := human("3\n")
		require.Equal(t, game.PlayAt(2), p.ChooseAction(state))
		assert.Contains(t, out.String(), "Your hand: 1.")
	})

	t.Run("zero_draws", func(t *testing.T) {
		p, _ := human("0\n")
		require.True(t, p.ChooseAction(state).IsDraw())
	})

	t.Run("unreadable_answers_draw", func(t *testing.T) {
		p, out := human("x\n9\n-1\n")
		require.True(t, p.ChooseAction(state).IsDraw())
		assert.Contains(t, out.String(), "A card will be drawn.")
	})

	t.Run("picks_a_color", func(t *testing.T) {
		p, _ := human("green\n")
		require.Equal(t, color.Green, p.ChooseColor(nil))
	})

	t.Run("color_defaults_to_red", func(t *testing.T) {
		p, _ := human("")
		require.Equal(t, color.Red, p.ChooseColor(nil))
	})

	t.Run("answers_yes_or_no", func(t *testing.T) {
		p, _ := human("y\nn\nyes\n")
		require.True(t, p.DecideDeclareLast(1))
		require.False(t, p.ConfirmChallenge(state))
		require.True(t, p.PlayDrawnCard(card.NewNumberCard(color.Red, 1), state))
	})

	t.Run("exit_runs_the_callback", func(t *testing.T) {
		p, _ := human("exit\n")
		exited := 0
		p.OnExit(func() { exited++ })
		require.False(t, p.DecideDeclareLast(1))
		require.Equal(t, 1, exited)
		require.True(t, p.Exited())
	})

	t.Run("stops_asking_after_exit", func(t *testing.T) {
		p, out := human("exit\n3\ngreen\ny\n")
		require.True(t, p.ChooseAction(state).IsDraw())
		printed := out.Len()

		require.True(t, p.ChooseAction(state).IsDraw())
		require.Equal(t, color.Red, p.ChooseColor(nil))
		require.False(t, p.PlayDrawnCard(card.NewNumberCard(color.Red, 1), state))
		require.Equal(t, printed, out.Len())
	})
}

func TestCreatePlayers(t *testing.T) {
	gen := rng.NewSeeded(7)

	t.Run("humans_first_then_bots", func(t *testing.T) {
		players, err := player.CreatePlayers([]string{"Annie"}, 4, player.StrategyHighestPoints, nil, gen)
		require.NoError(t, err)
		require.Len(t, players, 4)

		require.Equal(t, "Annie", players[0].Name())
		require.Equal(t, game.Human, players[0].Kind())

		names := map[string]bool{}
		for _, p := range players {
			require.False(t, names[p.Name()], p.Name())
			names[p.Name()] = true
		}
		for _, p := range players[1:] {
			require.Equal(t, game.Automated, p.Kind())
			bot, ok := p.Policy().(*player.Bot)
			require.True(t, ok)
			require.Equal(t, player.StrategyHighestPoints, bot.Strategy())
		}
	})

	t.Run("bots_only", func(t *testing.T) {
		players, err := player.CreateBots(consts.MaxPlayers, player.StrategyRandom, gen)
		require.NoError(t, err)
		require.Len(t, players, consts.MaxPlayers)
	})

	invalid := []struct {
		description string
		humans      []string
		seats       int
	}{
		{"too_few_seats", nil, 1},
		{"too_many_seats", nil, consts.MaxPlayers + 1},
		{"more_humans_than_seats", []string{"a", "b", "c"}, 2},
		{"duplicate_human", []string{"a", "a"}, 3},
		{"empty_name", []string{""}, 3},
	}
	for _, scenario := range invalid {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := player.CreatePlayers(scenario.humans, scenario.seats, player.StrategyRandom, nil, gen)
			require.ErrorIs(t, err, consts.ErrorsPlayersInvalid)
		})
	}
}
