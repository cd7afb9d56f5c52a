package player

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/game"
	"github.com/ratel-online/parade/parade/ui"
)

type seat struct {
	name  string
	human bool
}

// BotName is the name of the n-th computer player, counting from 1.
func BotName(n int) string {
	return fmt.Sprintf("Bot %d", n)
}

// CreatePlayers seats the named humans first, then the given number of
// computer players.
func CreatePlayers(humanNames []string, bots int, rng *rand.Rand) ([]game.Decider, error) {
	if len(humanNames) == 0 {
		return nil, consts.ErrorsNoHumanPlayer
	}
	if total := len(humanNames) + bots; bots < 0 || total < consts.MinPlayers || total > consts.MaxPlayers {
		return nil, fmt.Errorf("%d players: %w", total, consts.ErrorsGamePlayersInvalid)
	}
	seats := make([]seat, 0, len(humanNames)+bots)
	taken := make([]string, 0, len(humanNames)+bots)
	for _, name := range humanNames {
		if err := ValidateName(name, taken); err != nil {
			return nil, fmt.Errorf("player %q: %w", name, err)
		}
		seats = append(seats, seat{name: name, human: true})
		taken = append(taken, name)
	}
	for i := 0; i < bots; i++ {
		name := nextBotName(taken)
		seats = append(seats, seat{name: name})
		taken = append(taken, name)
	}
	return newDeciders(seats, rng), nil
}

// SetupPlayers asks on the console how many players join and who they are.
func SetupPlayers(rng *rand.Rand) []game.Decider {
	count := ui.PromptIntegerInRange(consts.MinPlayers, consts.MaxPlayers,
		fmt.Sprintf("How many players (%d-%d)?", consts.MinPlayers, consts.MaxPlayers))
	seats := make([]seat, 0, count)
	taken := make([]string, 0, count)
	humans := 0
	for i := 1; i <= count; i++ {
		human := ui.PromptPlayerType(i)
		for !human && humans == 0 && i == count {
			ui.Println(consts.ErrorsNoHumanPlayer.Msg)
			human = ui.PromptPlayerType(i)
		}
		name := nextBotName(taken)
		if human {
			humans++
			name = promptName(i, taken)
		}
		seats = append(seats, seat{name: name, human: human})
		taken = append(taken, name)
		ui.Message.PlayerJoined(name)
	}
	return newDeciders(seats, rng)
}

func promptName(seat int, taken []string) string {
	for {
		name := ui.PromptString(fmt.Sprintf("Enter the name of player %d:", seat))
		if err := ValidateName(name, taken); err != nil {
			ui.Println(err)
			continue
		}
		return name
	}
}

func nextBotName(taken []string) string {
	for n := 1; ; n++ {
		if name := BotName(n); !nameTaken(name, taken) {
			return name
		}
	}
}

func newDeciders(seats []seat, rng *rand.Rand) []game.Decider {
	deciders := make([]game.Decider, 0, len(seats))
	for _, s := range seats {
		if s.human {
			deciders = append(deciders, NewHumanPlayer(s.name))
		} else {
			deciders = append(deciders, NewComputerPlayer(s.name, rng))
		}
	}
	return deciders
}
