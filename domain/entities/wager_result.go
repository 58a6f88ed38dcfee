package entities

// WagerResult is the settled outcome of one wager as returned to the caller
type WagerResult struct {
	Game             string
	Won              bool
	Push             bool
	BetAmount        int64
	Payout           int64
	Multiplier       float64
	Detail           string
	NewBalance       int64
	ExperienceGained int64
	LevelUp          *LevelUp
}

// Net returns the net balance change produced by the wager
func (r *WagerResult) Net() int64 {
	return r.Payout - r.BetAmount
}

// ShopReceipt summarizes a completed shop purchase or sale
type ShopReceipt struct {
	Item       *ShopItem
	Quantity   int64
	Total      int64
	NewBalance int64
	Owned      int64
}
