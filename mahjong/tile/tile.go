package tile

import (
	"sort"
	"strings"
)

// Tile identity encoded as type*10 + number, so integer order is the
// tile order: numbered tiles by suit then rank, then winds, then dragons.
type Tile int

const (
	windType   = 4
	dragonType = 5
)

func Numbered(suit Suit, rank Rank) Tile {
	return Tile(int(suit)*10 + int(rank))
}

func OfWind(wind Wind) Tile {
	return Tile(windType*10 + int(wind))
}

func OfDragon(dragon Dragon) Tile {
	return Tile(dragonType*10 + int(dragon))
}

func (t Tile) Type() int {
	return int(t) / 10
}

func (t Tile) Number() int {
	return int(t) % 10
}

// Valid reports whether t is one of the 34 identities. The zero Tile is not.
func (t Tile) Valid() bool {
	n := t.Number()
	switch t.Type() {
	case int(Characters), int(Dots), int(Bamboo):
		return n >= int(One) && n <= int(Nine)
	case windType:
		return n >= int(East) && n <= int(North)
	case dragonType:
		return n >= int(White) && n <= int(Red)
	}
	return false
}

func (t Tile) IsNumbered() bool {
	_, ok := t.Suit()
	return ok
}

func (t Tile) IsWind() bool {
	return t.Valid() && t.Type() == windType
}

func (t Tile) IsDragon() bool {
	return t.Valid() && t.Type() == dragonType
}

// IsHonor reports whether t is a wind or dragon tile.
func (t Tile) IsHonor() bool {
	return t.IsWind() || t.IsDragon()
}

func (t Tile) Suit() (Suit, bool) {
	if !t.Valid() || t.Type() > int(Bamboo) {
		return 0, false
	}
	return Suit(t.Type()), true
}

func (t Tile) Rank() (Rank, bool) {
	if !t.IsNumbered() {
		return 0, false
	}
	return Rank(t.Number()), true
}

func (t Tile) Wind() (Wind, bool) {
	if !t.IsWind() {
		return 0, false
	}
	return Wind(t.Number()), true
}

func (t Tile) Dragon() (Dragon, bool) {
	if !t.IsDragon() {
		return 0, false
	}
	return Dragon(t.Number()), true
}

func (t Tile) Less(other Tile) bool {
	return t < other
}

// Compare returns -1, 0 or 1 as a sorts before, equal to, or after b.
// Ordering across categories carries no game meaning.
func Compare(a, b Tile) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (t Tile) String() string {
	if suit, ok := t.Suit(); ok {
		return Rank(t.Number()).String() + " " + suit.String()
	}
	if wind, ok := t.Wind(); ok {
		return wind.String() + " Wind"
	}
	if dragon, ok := t.Dragon(); ok {
		return dragon.String() + " Dragon"
	}
	return "Unknown"
}

func Sort(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) })
}

func ToTileString(tiles []Tile) string {
	ret := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ret = append(ret, t.String())
	}
	return strings.Join(ret, ", ")
}
