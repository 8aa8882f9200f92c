package entities

import "math"

// CaughtItem is one inventory entry. Created at successful catch
// resolution; destroyed when sold or consumed by a quest payout.
type CaughtItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rarity Rarity  `json:"rarity"`
	Price  float64 `json:"price"`
	Weight float64 `json:"weight"`
	Zone   ZoneID  `json:"zone"`
}

// Value is the sale value of the item: weight times unit price,
// rounded to cents
func (i CaughtItem) Value() float64 {
	return RoundMoney(i.Weight * i.Price)
}

// RoundMoney rounds a currency amount to 2 decimal places. Amounts are
// only rounded at the edges, never mid-calculation.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundWeight rounds a weight to 1 decimal place
func RoundWeight(v float64) float64 {
	return math.Round(v*10) / 10
}
