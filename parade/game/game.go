package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/event"
)

type Game struct {
	id        uuid.UUID
	rng       *rand.Rand
	dice      *Dice
	deck      *Deck
	parade    *Parade
	players   Order
	withdrawn []*Player
	phase     Phase
}

// Result is what a finished or abandoned game leaves behind.
type Result struct {
	Winner  *Player
	Ranking []*Player
	Flipped map[*Player][]*card.Card
	// Abandoned is set when the game stopped before scoring because a single
	// player, or no human, was left.
	Abandoned bool
}

func New(deciders []Decider, rng *rand.Rand) (*Game, error) {
	if len(deciders) < consts.MinPlayers || len(deciders) > consts.MaxPlayers {
		return nil, fmt.Errorf("%d players: %w", len(deciders), consts.ErrorsGamePlayersInvalid)
	}
	names := make(map[string]bool, len(deciders))
	players := make(Order, 0, len(deciders))
	for _, decider := range deciders {
		if names[decider.Name()] {
			return nil, fmt.Errorf("duplicate player %q: %w", decider.Name(), consts.ErrorsGamePlayersInvalid)
		}
		names[decider.Name()] = true
		players = append(players, NewPlayer(decider))
	}
	return &Game{
		id:      uuid.New(),
		rng:     rng,
		dice:    NewDice(rng),
		deck:    NewDeck(),
		parade:  NewParade(),
		players: players,
		phase:   PhaseInit,
	}, nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Parade() *Parade {
	return g.parade
}

// Players returns the active players in turn order.
func (g *Game) Players() Order {
	return append(Order(nil), g.players...)
}

func (g *Game) Withdrawn() []*Player {
	return append([]*Player(nil), g.withdrawn...)
}

func (g *Game) Phase() Phase {
	return g.phase
}

// CardCount counts every card the game knows of: deck, parade, and the hands
// and open cards of active and withdrawn players.
func (g *Game) CardCount() int {
	count := g.deck.Size() + g.parade.Size()
	for _, p := range append(g.Players(), g.withdrawn...) {
		count += p.hand.Size() + p.open.Total()
	}
	return count
}

// Run plays a whole game, from the starting dice to the winner.
func (g *Game) Run() (*Result, error) {
	log.Infof("game %s started with players %v\n", g.id, g.players.Names())
	if err := g.Setup(); err != nil {
		return nil, err
	}
	abandoned, err := g.PlayRounds()
	if err != nil {
		return nil, err
	}
	if abandoned {
		g.setPhase(PhaseTerminal)
		log.Infof("game %s abandoned, remaining players %v\n", g.id, g.players.Names())
		return &Result{Ranking: g.Players(), Abandoned: true}, nil
	}
	if err := g.LastRound(); err != nil {
		return nil, err
	}
	if err := g.FinalPlay(); err != nil {
		return nil, err
	}
	return g.Conclude()
}

// Setup picks the starting player, shuffles, deals the hands and lays out the
// parade.
func (g *Game) Setup() error {
	g.setPhase(PhaseInit)
	first := DecideStartingPlayer(g.players, g.dice)
	g.players = g.players.RotateTo(first)
	g.deck.Shuffle(g.rng)
	for _, p := range g.players {
		cards, err := g.deck.Draw(consts.InitialHandSize)
		if err != nil {
			return fmt.Errorf("deal %s: %w", p.Name(), err)
		}
		p.AddCards(cards)
	}
	if err := g.parade.Initialize(g.deck); err != nil {
		return fmt.Errorf("initialize parade: %w", err)
	}
	return nil
}

// PlayRounds runs turns until an end condition fires. It reports true when the
// game was abandoned instead.
func (g *Game) PlayRounds() (bool, error) {
	g.setPhase(PhaseActiveRound)
	for {
		for _, p := range g.Players() {
			if g.abandoned() {
				return true, nil
			}
			if p.Withdraw(g.ExtractState(p)) {
				g.withdraw(p)
				continue
			}
			if err := g.playTurn(p); err != nil {
				return false, err
			}
			if err := p.DrawFromDeck(g.deck); err != nil {
				return false, err
			}
			if CheckEndGame(g.deck, g.players) {
				log.Infof("game %s end triggered by %s's turn\n", g.id, p.Name())
				g.players = g.players.RotateTo(g.players.Next(p))
				return false, nil
			}
		}
	}
}

// LastRound gives every active player one more turn, without drawing.
func (g *Game) LastRound() error {
	g.setPhase(PhaseLastRound)
	for _, p := range g.players {
		if err := g.playTurn(p); err != nil {
			return err
		}
	}
	return nil
}

// FinalPlay has every player move cards from hand to open cards.
func (g *Game) FinalPlay() error {
	g.setPhase(PhaseFinalPlay)
	for _, p := range g.players {
		for i := 0; i < consts.FinalPlayMoves; i++ {
			discarded, err := p.ChooseDiscard(g.ExtractState(p))
			if err != nil {
				return err
			}
			if err := p.Discard(discarded); err != nil {
				return err
			}
		}
	}
	return nil
}

// Conclude flips, scores and ranks the players.
func (g *Game) Conclude() (*Result, error) {
	g.setPhase(PhaseFlip)
	flipped := FlipCards(g.players)

	g.setPhase(PhaseScore)
	CalculateScores(g.players)

	g.setPhase(PhaseRank)
	winner, ranking, err := DetermineWinner(g.players, g.dice)
	if err != nil {
		return nil, err
	}
	g.players = Order(ranking)

	g.setPhase(PhaseTerminal)
	log.Infof("game %s won by %s with %d points\n", g.id, winner.Name(), winner.Score())
	return &Result{
		Winner:  winner,
		Ranking: ranking,
		Flipped: flipped,
	}, nil
}

func (g *Game) ExtractState(player *Player) State {
	openCards := make(map[string][]*card.Card, len(g.players))
	for _, p := range g.players {
		openCards[p.Name()] = p.open.All()
	}
	return State{
		Phase:             g.phase,
		Parade:            g.parade.Cards(),
		DeckSize:          g.deck.Size(),
		CurrentPlayerHand: player.Hand(),
		PlayerSequence:    g.players.Names(),
		OpenCards:         openCards,
	}
}

func (g *Game) playTurn(p *Player) error {
	played, err := p.ChoosePlay(g.ExtractState(p))
	if err != nil {
		return err
	}
	_, err = PlayCard(g.parade, p, played)
	return err
}

func (g *Game) abandoned() bool {
	switch {
	case len(g.players) <= 1:
		event.EndTriggered.Emit(event.EndTriggeredPayload{Reason: event.EndOnePlayer})
		return true
	case g.players.Humans() == 0:
		event.EndTriggered.Emit(event.EndTriggeredPayload{Reason: event.EndNoHumansLeft})
		return true
	default:
		return false
	}
}

func (g *Game) withdraw(p *Player) {
	g.players = g.players.Without(p)
	g.withdrawn = append(g.withdrawn, p)
	event.PlayerWithdrew.Emit(event.PlayerWithdrewPayload{
		PlayerName: p.Name(),
		Remaining:  g.players.Names(),
	})
}

func (g *Game) setPhase(phase Phase) {
	g.phase = phase
	event.PhaseChanged.Emit(event.PhaseChangedPayload{Phase: string(phase)})
}
