package player

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/rng"
	"github.com/ratel-online/uno/uno/ui"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the humans first and fills the remaining seats with bots.
func CreatePlayers(humanNames []string, seats int, strategy Strategy, port ui.Port, gen rng.Generator) ([]*game.Participant, error) {
	if seats < consts.MinPlayers || seats > consts.MaxPlayers || len(humanNames) > seats {
		return nil, consts.ErrorsPlayersInvalid
	}

	taken := make(map[string]bool, seats)
	players := make([]*game.Participant, 0, seats)
	for _, name := range humanNames {
		if name == "" || taken[name] {
			return nil, consts.ErrorsPlayersInvalid
		}
		taken[name] = true
		players = append(players, game.NewParticipant(name, game.Human, NewHumanPlayer(name, port)))
	}

	for _, name := range generateBotNames(seats-len(players), taken, gen) {
		players = append(players, game.NewParticipant(name, game.Automated, NewBot(strategy, gen)))
	}
	return players, nil
}

// CreateBots seats automated participants only.
func CreateBots(seats int, strategy Strategy, gen rng.Generator) ([]*game.Participant, error) {
	return CreatePlayers(nil, seats, strategy, nil, gen)
}

func generateBotNames(amount int, taken map[string]bool, gen rng.Generator) []string {
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if !taken[name] {
			names = append(names, name)
		}
	}
	rng.Shuffle(gen, len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	return names[:amount]
}
