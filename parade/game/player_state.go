package game

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card"
	"github.com/ratel-online/parade/parade/event"
)

// Player is the state of one seat: its closed hand, its open cards and its
// final score. Choices are delegated to the Decider.
type Player struct {
	decider Decider
	hand    *Hand
	open    *Collection
	score   int
}

func NewPlayer(decider Decider) *Player {
	return &Player{
		decider: decider,
		hand:    NewHand(),
		open:    NewCollection(),
	}
}

func (p *Player) Name() string {
	return p.decider.Name()
}

func (p *Player) Human() bool {
	return p.decider.Human()
}

func (p *Player) Hand() []*card.Card {
	return p.hand.Cards()
}

func (p *Player) OpenCards() *Collection {
	return p.open
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) AddCards(cards []*card.Card) {
	p.hand.AddCards(cards)
	p.decider.NotifyCardsDrawn(cards)
}

// DrawFromDeck moves the top card of the deck into the hand.
func (p *Player) DrawFromDeck(deck *Deck) error {
	drawn, err := deck.DrawOne()
	if err != nil {
		return fmt.Errorf("%s draws from deck: %w", p.Name(), err)
	}
	p.AddCards([]*card.Card{drawn})
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: p.Name(),
		Amount:     1,
		DeckSize:   deck.Size(),
	})
	return nil
}

// ChoosePlay asks the decider for the card to play into the parade.
func (p *Player) ChoosePlay(gameState State) (*card.Card, error) {
	return p.choose(gameState, p.decider.Play)
}

// ChooseDiscard asks the decider for a card to move to the open cards during
// the final play.
func (p *Player) ChooseDiscard(gameState State) (*card.Card, error) {
	return p.choose(gameState, p.decider.Discard)
}

func (p *Player) Withdraw(gameState State) bool {
	return p.decider.Withdraw(gameState)
}

// Discard moves a card from the hand straight to the open cards.
func (p *Player) Discard(discarded *card.Card) error {
	if !p.hand.RemoveCard(discarded) {
		return fmt.Errorf("%s discards %s: %w", p.Name(), discarded, consts.ErrorsCardNotInHand)
	}
	p.open.Add(discarded)
	event.CardDiscarded.Emit(event.CardDiscardedPayload{
		PlayerName: p.Name(),
		Card:       discarded,
	})
	return nil
}

// CalculateScore recomputes the score from the open cards.
func (p *Player) CalculateScore() int {
	p.score = p.open.Sum()
	return p.score
}

func (p *Player) choose(gameState State, pick func([]*card.Card, State) *card.Card) (*card.Card, error) {
	if p.hand.Empty() {
		return nil, fmt.Errorf("%s: %w", p.Name(), consts.ErrorsHandEmpty)
	}
	selectedCard := pick(p.hand.Cards(), gameState)
	if selectedCard == nil || !p.hand.Contains(selectedCard) {
		log.Infof("Cheat detected! Card %s is not in %s's hand!\n", selectedCard, p.Name())
		return nil, fmt.Errorf("%s chooses %s: %w", p.Name(), selectedCard, consts.ErrorsCardNotInHand)
	}
	return selectedCard, nil
}

// PlayCard plays a card from the player's hand into the parade and hands the
// removed cards over to the player's open cards.
func PlayCard(parade *Parade, player *Player, played *card.Card) ([]*card.Card, error) {
	if player.hand.Empty() {
		return nil, fmt.Errorf("%s: %w", player.Name(), consts.ErrorsHandEmpty)
	}
	if !player.hand.RemoveCard(played) {
		return nil, fmt.Errorf("%s plays %s: %w", player.Name(), played, consts.ErrorsCardNotInHand)
	}
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       played,
	})
	removed := parade.Play(played)
	player.open.Add(removed...)
	event.CardsCollected.Emit(event.CardsCollectedPayload{
		PlayerName: player.Name(),
		Cards:      removed,
	})
	return removed, nil
}
