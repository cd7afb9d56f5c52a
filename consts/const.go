package consts

import "time"

const (
	MinPlayers = 2
	MaxPlayers = 6

	MinCardValue = 0
	MaxCardValue = 10

	InitialParadeSize = 6
	InitialHandSize   = 5
	FinalPlayMoves    = 2

	// TwoPlayerFlipThreshold is the smallest lead that still flips a color
	// when only two players remain.
	TwoPlayerFlipThreshold = 2
	FlippedCardValue       = 1

	DiceSides  = 6
	PodiumSize = 3

	MinNameLength = 3
	MaxNameLength = 10
	BotNamePrefix = "bot"
	// MinBotPrefixedNameLength applies to human names starting with BotNamePrefix.
	MinBotPrefixedNameLength = 6

	DefaultDelay = 500 * time.Millisecond
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsDeckEmpty          = NewErr(1, true, "Deck is empty. ")
	ErrorsParadeEmpty        = NewErr(2, true, "Parade is empty. ")
	ErrorsHandEmpty          = NewErr(3, true, "No cards left in hand. ")
	ErrorsCardNotInHand      = NewErr(4, true, "Card is not in hand. ")
	ErrorsGamePlayersInvalid = NewErr(5, true, "Game players invalid. ")
	ErrorsInputInvalid       = NewErr(6, false, "Input invalid. ")
	ErrorsNameLength         = NewErr(7, false, "Name must be (3-10) characters long. ")
	ErrorsNameNoLetter       = NewErr(7, false, "Name must contain at least one letter. ")
	ErrorsNameBotPrefix      = NewErr(7, false, "Names starting with 'bot' must be at least 6 characters long. ")
	ErrorsNameTaken          = NewErr(7, false, "Name already taken by another player. ")
	ErrorsNoHumanPlayer      = NewErr(8, false, "There must be at least one human player! ")
)
