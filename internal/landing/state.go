package landing

import "encoding/json"

// Item is an opaque record as returned by the catalog API. Its shape is owned
// by the server and is never validated here.
type Item = json.RawMessage

// State is the data bound to the landing page. Every field is always a
// non-nil slice so it encodes as [] and never as null.
type State struct {
	Banners      []Item `json:"banners"`
	PopularCards []Item `json:"popularCards"`
	LimitedCards []Item `json:"limitedCards"`
}

// NewState returns a state with all three lists empty.
func NewState() State {
	return State{
		Banners:      []Item{},
		PopularCards: []Item{},
		LimitedCards: []Item{},
	}
}

// SetBanners replaces the banners wholesale. nil resets to an empty list.
func (s *State) SetBanners(items []Item) { s.Banners = orEmpty(items) }

// SetPopularCards replaces the popular product cards wholesale.
func (s *State) SetPopularCards(items []Item) { s.PopularCards = orEmpty(items) }

// SetLimitedCards replaces the limited product cards wholesale.
func (s *State) SetLimitedCards(items []Item) { s.LimitedCards = orEmpty(items) }

func (s State) clone() State {
	return State{
		Banners:      append([]Item{}, s.Banners...),
		PopularCards: append([]Item{}, s.PopularCards...),
		LimitedCards: append([]Item{}, s.LimitedCards...),
	}
}

func orEmpty(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	return items
}
