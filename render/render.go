package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/game"
)

var places = []string{"1st", "2nd", "3rd"}

// Podium shows the best three players, the winner in the middle and raised.
func Podium(ranking []*game.Player) string {
	top := ranking
	if len(top) > consts.PodiumSize {
		top = top[:consts.PodiumSize]
	}
	if len(top) == 0 {
		return ""
	}
	// Draw order left to right: 2nd, 1st, 3rd. Heights are by place.
	order := []int{1, 0, 2}
	heights := []int{3, 2, 1}
	const width = 14

	buf := bytes.Buffer{}
	buf.WriteString("PODIUM\n")
	for row := heights[0] + 1; row >= 0; row-- {
		for _, index := range order {
			if index >= len(top) {
				continue
			}
			height := heights[index]
			switch {
			case row == height+1:
				buf.WriteString(center(top[index].Name(), width))
			case row == height:
				buf.WriteString(center(fmt.Sprintf("%d pts", top[index].Score()), width))
			case row == height-1:
				buf.WriteString(center("["+places[index]+"]", width))
			case row < height:
				buf.WriteString(center("|      |", width))
			default:
				buf.WriteString(strings.Repeat(" ", width))
			}
		}
		buf.WriteString("\n")
	}
	return strings.TrimRight(buf.String(), " \n") + "\n"
}

// Ranking lays out every player's place, score, card count and color count.
func Ranking(ranking []*game.Player) (string, error) {
	data := pterm.TableData{{"Place", "Name", "Score", "Cards", "Colors"}}
	for i, p := range ranking {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			p.Name(),
			strconv.Itoa(p.Score()),
			strconv.Itoa(p.OpenCards().Total()),
			strconv.Itoa(p.OpenCards().ColorCount()),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Flipped lists the cards each player had to flip, in the given order.
func Flipped(flipped map[*game.Player][]*card.Card, players []*game.Player) string {
	buf := bytes.Buffer{}
	for _, p := range players {
		cards := flipped[p]
		if len(cards) == 0 {
			buf.WriteString(fmt.Sprintf("%s flipped nothing\n", p.Name()))
			continue
		}
		buf.WriteString(fmt.Sprintf("%s flipped %d card(s): %s\n", p.Name(), len(cards), cards))
	}
	return buf.String()
}

// OpenCards shows every player's collection, one color per column.
func OpenCards(players []*game.Player) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-12s", "Name"))
	for _, c := range color.All() {
		buf.WriteString(fmt.Sprintf("%-8s", c.Name()))
	}
	buf.WriteString("\n")
	for _, p := range players {
		buf.WriteString(fmt.Sprintf("%-12s", p.Name()))
		for _, c := range color.All() {
			buf.WriteString(fmt.Sprintf("%-8d", p.OpenCards().Count(c)))
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

func center(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	left := (width - textWidth) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-textWidth-left)
}
