package game

import "github.com/ratel-online/mahjong/mahjong/tile"

// Cycler walks the seat winds in turn order, wrapping around.
type Cycler struct {
	elements []tile.Wind
	current  int
}

// NewCycler starts at first. An unknown first starts at the head of elements,
// and empty elements cycle through all winds.
func NewCycler(elements []tile.Wind, first tile.Wind) *Cycler {
	if len(elements) == 0 {
		elements = tile.Winds
	}
	c := &Cycler{elements: make([]tile.Wind, len(elements))}
	copy(c.elements, elements)
	for i, element := range c.elements {
		if element == first {
			c.current = i
			break
		}
	}
	return c
}

func (c *Cycler) Current() tile.Wind {
	return c.elements[c.current]
}

// ForEach visits every element once, beginning with Current, and leaves
// Current unchanged.
func (c *Cycler) ForEach(function func(tile.Wind)) {
	count := len(c.elements)
	for i := 0; i < count; i++ {
		function(c.elements[(c.current+i)%count])
	}
}

func (c *Cycler) Next() tile.Wind {
	c.current = (c.current + 1) % len(c.elements)
	return c.elements[c.current]
}
