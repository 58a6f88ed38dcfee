package games

import (
	"fmt"
	"math/rand"
	"strings"
)

// Card is a single playing card
type Card struct {
	Suit string
	Rank string
}

// Value returns the card's blackjack value, counting aces as 11
func (c Card) Value() int {
	switch c.Rank {
	case "J", "Q", "K":
		return 10
	case "A":
		return 11
	default:
		v := 0
		fmt.Sscanf(c.Rank, "%d", &v)
		return v
	}
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

var (
	suits = []string{"♠", "♥", "♦", "♣"}
	ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// NewDeck builds an ordered single 52-card deck
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// hand is a dealt blackjack hand
type hand struct {
	cards []Card
}

func (h *hand) add(c Card) {
	h.cards = append(h.cards, c)
}

// value computes the hand total with soft-ace adjustment: aces count 11,
// then drop to 1 one at a time while the total busts.
func (h *hand) value() int {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func (h *hand) isBlackjack() bool {
	return len(h.cards) == 2 && h.value() == 21
}

func (h *hand) isBust() bool {
	return h.value() > 21
}

func (h *hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// PlayBlackjack deals a shuffled single deck and auto-plays the fixed
// strategy: the player hits below 17, then the dealer hits below 17.
func PlayBlackjack(bet int64, rng *rand.Rand) (*Outcome, error) {
	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return playBlackjackDeck(bet, deck), nil
}

// playBlackjackDeck runs a full round off the top of the given deck.
// Cards are drawn from the end of the slice.
func playBlackjackDeck(bet int64, deck []Card) *Outcome {
	draw := func() Card {
		c := deck[len(deck)-1]
		deck = deck[:len(deck)-1]
		return c
	}

	var player, dealer hand
	for i := 0; i < 2; i++ {
		player.add(draw())
		dealer.add(draw())
	}

	for player.value() < 17 {
		player.add(draw())
	}
	if !player.isBust() {
		for dealer.value() < 17 {
			dealer.add(draw())
		}
	}

	detail := fmt.Sprintf("you: %s (%d) vs dealer: %s (%d)", player.String(), player.value(), dealer.String(), dealer.value())

	switch {
	case player.isBust():
		return &Outcome{Detail: "bust — " + detail}
	case player.isBlackjack() && !dealer.isBlackjack():
		return &Outcome{Won: true, Payout: int64(float64(bet) * 2.5), Multiplier: 2.5, Detail: "blackjack — " + detail}
	case dealer.isBust():
		return &Outcome{Won: true, Payout: bet * 2, Multiplier: 2, Detail: "dealer bust — " + detail}
	case player.isBlackjack() && dealer.isBlackjack():
		return &Outcome{Push: true, Payout: bet, Multiplier: 1, Detail: "push, both blackjack — " + detail}
	case player.value() > dealer.value():
		return &Outcome{Won: true, Payout: bet * 2, Multiplier: 2, Detail: detail}
	case player.value() == dealer.value():
		return &Outcome{Push: true, Payout: bet, Multiplier: 1, Detail: "push — " + detail}
	default:
		return &Outcome{Detail: detail}
	}
}
