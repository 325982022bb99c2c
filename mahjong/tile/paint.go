package tile

import "github.com/fatih/color"

var (
	paintCharacters = color.New(color.FgHiRed).SprintFunc()
	paintDots       = color.New(color.FgHiCyan).SprintFunc()
	paintBamboo     = color.New(color.FgHiGreen).SprintFunc()
	paintWind       = color.New(color.FgHiYellow).SprintFunc()
	paintDragons    = map[Dragon]func(...interface{}) string{
		White: color.New(color.FgHiWhite, color.Bold).SprintFunc(),
		Green: color.New(color.FgGreen, color.Bold).SprintFunc(),
		Red:   color.New(color.FgRed, color.Bold).SprintFunc(),
	}
)

// Paint renders String() coloured by category. With colour disabled
// (color.NoColor) the result equals String().
func (t Tile) Paint() string {
	text := t.String()
	if suit, ok := t.Suit(); ok {
		switch suit {
		case Characters:
			return paintCharacters(text)
		case Dots:
			return paintDots(text)
		case Bamboo:
			return paintBamboo(text)
		}
	}
	if t.IsWind() {
		return paintWind(text)
	}
	if dragon, ok := t.Dragon(); ok {
		return paintDragons[dragon](text)
	}
	return text
}
