package tile

type Suit int

const (
	Characters Suit = iota + 1
	Dots
	Bamboo
)

type Rank int

const (
	One Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

type Wind int

const (
	East Wind = iota + 1
	South
	West
	North
)

type Dragon int

const (
	White Dragon = iota + 1
	Green
	Red
)

// Iteration order of these lists drives the canonical wall layout.
var (
	Suits   = []Suit{Characters, Dots, Bamboo}
	Ranks   = []Rank{One, Two, Three, Four, Five, Six, Seven, Eight, Nine}
	Winds   = []Wind{East, South, West, North}
	Dragons = []Dragon{White, Green, Red}
)

var suitNames = map[Suit]string{
	Characters: "Characters",
	Dots:       "Dots",
	Bamboo:     "Bamboo",
}

var rankNames = map[Rank]string{
	One:   "One",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
}

var windNames = map[Wind]string{
	East:  "East",
	South: "South",
	West:  "West",
	North: "North",
}

var dragonNames = map[Dragon]string{
	White: "White",
	Green: "Green",
	Red:   "Red",
}

func (s Suit) String() string {
	return suitNames[s]
}

func (r Rank) String() string {
	return rankNames[r]
}

func (w Wind) String() string {
	return windNames[w]
}

func (d Dragon) String() string {
	return dragonNames[d]
}

// All lists the 34 identities in canonical order.
var All = func() []Tile {
	tiles := make([]Tile, 0, 34)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			tiles = append(tiles, Numbered(suit, rank))
		}
	}
	for _, wind := range Winds {
		tiles = append(tiles, OfWind(wind))
	}
	for _, dragon := range Dragons {
		tiles = append(tiles, OfDragon(dragon))
	}
	return tiles
}()
