package game

import (
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/event"
)

// DetermineWinner ranks the scored players and picks the winner. Players tied
// on score, open cards and colors with the best player go to the dice; they
// then lead the returned ranking in dice order.
func DetermineWinner(players []*Player, dice *Dice) (*Player, []*Player, error) {
	if len(players) == 0 {
		return nil, nil, consts.ErrorsGamePlayersInvalid
	}

	ranking := Rank(players)
	potentialWinners := PotentialWinners(ranking)
	if len(potentialWinners) > 1 {
		event.TieAnnounced.Emit(event.TieAnnouncedPayload{
			PlayerNames: Order(potentialWinners).Names(),
			Score:       potentialWinners[0].Score(),
		})
	}

	var fullyTied []*Player
	for _, p := range potentialWinners {
		if Compare(potentialWinners[0], p) == 0 {
			fullyTied = append(fullyTied, p)
		}
	}

	winner := potentialWinners[0]
	if len(fullyTied) > 1 {
		rolled := BreakTie(fullyTied, dice)
		winner = rolled[0]
		reordered := make([]*Player, 0, len(ranking))
		reordered = append(reordered, rolled...)
		for _, p := range ranking {
			if Order(fullyTied).IndexOf(p) == -1 {
				reordered = append(reordered, p)
			}
		}
		ranking = reordered
	}

	event.WinnerFound.Emit(event.WinnerFoundPayload{
		PlayerName: winner.Name(),
		Score:      winner.Score(),
	})
	return winner, ranking, nil
}

// PotentialWinners returns the players of a ranking that share its lowest
// score.
func PotentialWinners(ranking []*Player) []*Player {
	if len(ranking) == 0 {
		return nil
	}
	var winners []*Player
	for _, p := range ranking {
		if p.Score() == ranking[0].Score() {
			winners = append(winners, p)
		}
	}
	return winners
}
