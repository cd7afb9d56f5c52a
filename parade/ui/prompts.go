package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/spf13/cast"
)

var (
	input = bufio.NewReader(os.Stdin)
	// inputClosed runs when the player closes stdin while a prompt waits.
	inputClosed = func() {
		Println("Input closed. Goodbye!")
		os.Exit(0)
	}
)

// SetInput replaces the reader prompts read from.
func SetInput(r io.Reader) {
	input = bufio.NewReader(r)
}

func readLine() (string, error) {
	line, err := input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func PromptString(message string) string {
	for {
		Println(message)
		line, err := readLine()
		if err == io.EOF {
			inputClosed()
			return ""
		}
		if err != nil || line == "" {
			Println("Invalid text input")
			continue
		}
		return line
	}
}

func promptInteger(message string) int {
	for {
		value, err := cast.ToIntE(PromptString(message))
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return value
	}
}

func promptLowercaseString(message string) string {
	return strings.ToLower(PromptString(message))
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		value := promptInteger(message)
		if value < minimum || value > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return value
	}
}

// PromptCardSelection lists cards numbered from 1 and returns the chosen one.
func PromptCardSelection(cards []*card.Card, message string) (*card.Card, error) {
	if len(cards) == 0 {
		return nil, consts.ErrorsHandEmpty
	}
	lines := []string{message}
	for i, c := range cards {
		lines = append(lines, fmt.Sprintf("%s (enter %d)", c, i+1))
	}
	index := PromptIntegerInRange(1, len(cards), strings.Join(lines, "\n"))
	return cards[index-1], nil
}

// PromptYesNo accepts y, yes, n and no in any case.
func PromptYesNo(message string) bool {
	for {
		switch promptLowercaseString(message + " (y/n)") {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		Println("Please answer y or n")
	}
}

// PromptPlayerType asks whether a seat is taken by a human or the computer.
func PromptPlayerType(seat int) bool {
	for {
		switch promptLowercaseString(fmt.Sprintf("Is player %d a (h)uman or a (c)omputer?", seat)) {
		case "h", "human":
			return true
		case "c", "computer":
			return false
		}
		Println("Please answer h or c")
	}
}

// PromptTurnAction asks a player to play on or quit. Quitting needs a
// confirmation; it reports true only when the player confirmed.
func PromptTurnAction(playerName string) bool {
	message := fmt.Sprintf("%s, enter (p)lay to take your turn or (q)uit to leave the game", playerName)
	for {
		switch promptLowercaseString(message) {
		case "p", "play":
			return false
		case "q", "quit":
			if PromptYesNo("Are you sure you want to quit?") {
				return true
			}
			return false
		}
		Println("Please answer p or q")
	}
}
