package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	letters := []string{"P", "A", "R", "A", "D", "E"}
	colors := color.All()
	painted := make([]string, 0, len(letters))
	for i, letter := range letters {
		painted = append(painted, colors[i%len(colors)].Paint(letter))
	}
	return Sprintfln("WELCOME TO %s", strings.Join(painted, ""))
}

func (m MessageWriter) Menu() string {
	return Sprintlns([]string{
		"1. Start New Game",
		"2. Learn How to Play",
		"3. Quit",
	})
}

func (m MessageWriter) Instructions() string {
	return Sprintlns([]string{
		"GOAL: collect the LOWEST score.",
		fmt.Sprintf("SETUP: every player starts with %d cards, %d cards form the parade.", consts.InitialHandSize, consts.InitialParadeSize),
		"YOUR TURN: play 1 card to the end of the parade.",
		"  With a card of value N, the last N+1 cards before it are safe.",
		"  Every other card leaves the parade if it has your card's color",
		"  or a value lower than or equal to N. You collect those cards.",
		"  Then you draw a card from the deck.",
		fmt.Sprintf("GAME ENDS WHEN: the deck runs out or someone collects all %d colors.", color.Count()),
		fmt.Sprintf("FINAL ROUND: one more turn each, then everyone adds %d cards from hand to their collection.", consts.FinalPlayMoves),
		fmt.Sprintf("FLIPPING: the players with the most cards of a color count each of them as %d.", consts.FlippedCardValue),
		"  With two players, a lead of one card is not enough.",
		"LOWEST TOTAL WINS. Ties: fewer cards, then fewer colors, then dice.",
	})
}

func (m MessageWriter) Goodbye() string {
	return Sprintln("Thanks for playing Parade! Goodbye!")
}

func (m MessageWriter) PlayerJoined(playerName string) string {
	return Sprintfln("%s has joined the game!", playerName)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []*card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) HumanPlayerFinalPlay(playerName string) string {
	return Sprintfln("%s, pick a card to add to your open cards.", playerName)
}

func (m MessageWriter) ComputerThinking(playerName string) string {
	return Sprintfln("%s is thinking...", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []*card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card *card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerCollectedCards(playerName string, cards []*card.Card) string {
	if len(cards) == 0 {
		return Sprintfln("%s took no cards from the parade.", playerName)
	}
	return Sprintfln("%s took %s from the parade!", playerName, cards)
}

func (m MessageWriter) PlayerDiscardedCard(playerName string, card *card.Card) string {
	return Sprintfln("%s added %s to their open cards.", playerName, card)
}

func (m MessageWriter) PlayerWithdrew(playerName string, remaining []string) string {
	return Sprintfln("%s chose to quit the game. Remaining: %s", playerName, strings.Join(remaining, ", "))
}

func (m MessageWriter) PhaseStarted(phase string) string {
	titles := map[string]string{
		"active_round": "THE PARADE BEGINS",
		"last_round":   "LAST ROUND",
		"final_play":   "FINAL PLAY",
		"flip":         "FLIPPING CARDS",
		"rank":         "FINAL RESULTS",
	}
	title, found := titles[phase]
	if !found {
		return ""
	}
	return Sprintfln("========== %s ==========", title)
}

func (m MessageWriter) EndTriggered(payload event.EndTriggeredPayload) string {
	switch payload.Reason {
	case event.EndDeckEmpty:
		return Sprintln("The deck is empty! Everyone gets one last turn.")
	case event.EndAllColors:
		return Sprintfln("%s has collected every color! Everyone gets one last turn.", payload.PlayerName)
	case event.EndOnePlayer:
		return Sprintln("Game over: only one player is left.")
	case event.EndNoHumansLeft:
		return Sprintln("Game over: no human players are left.")
	default:
		return ""
	}
}

func (m MessageWriter) ColorTallied(payload event.ColorTalliedPayload) string {
	switch payload.Outcome {
	case event.TallyAllTied:
		return Sprintfln("%s: everyone holds %d, no cards are flipped.", payload.Color, payload.Max)
	case event.TallyTwoPlayerRule:
		return Sprintfln("%s: a lead of less than %d cards between two players, no cards are flipped.",
			payload.Color, consts.TwoPlayerFlipThreshold)
	default:
		return Sprintfln("%s: %s flip their %d card(s).", payload.Color, strings.Join(payload.Holders, ", "), payload.Max)
	}
}

func (m MessageWriter) TieAnnounced(playerNames []string, score int) string {
	return Sprintfln("It's a tie at %d points between %s!", score, strings.Join(playerNames, ", "))
}

func (m MessageWriter) DiceRolled(playerName string, roll int) string {
	return Sprintfln("%s rolled a %d!", playerName, roll)
}

func (m MessageWriter) StartingPlayerDecided(playerName string) string {
	return Sprintfln("%s goes first!", playerName)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func (m MessageWriter) GameOver() string {
	return Sprintln("The game ended early. No winner this time.")
}
