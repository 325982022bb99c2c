package game_test

import (
	"testing"

	"github.com/ratel-online/mahjong/mahjong/game"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclerCurrent(t *testing.T) {
	cycler := game.NewCycler(tile.Winds, tile.West)
	assert.Equal(t, tile.West, cycler.Current())
	cycler.Next()
	assert.Equal(t, tile.North, cycler.Current())
	cycler.Next()
	assert.Equal(t, tile.East, cycler.Current())

	unknown := game.NewCycler(tile.Winds, tile.Wind(0))
	assert.Equal(t, tile.East, unknown.Current())
}

func TestCyclerForEach(t *testing.T) {
	cycler := game.NewCycler(tile.Winds, tile.South)

	var results []tile.Wind
	cycler.ForEach(func(element tile.Wind) {
		results = append(results, element)
	})

	require.Equal(t, []tile.Wind{tile.South, tile.West, tile.North, tile.East}, results)
	require.Equal(t, tile.South, cycler.Current())
}

func TestCyclerNext(t *testing.T) {
	cycler := game.NewCycler(tile.Winds, tile.East)
	assert.Equal(t, tile.South, cycler.Next())
	assert.Equal(t, tile.West, cycler.Next())
	assert.Equal(t, tile.North, cycler.Next())
	assert.Equal(t, tile.East, cycler.Next())
}

func TestCyclerWithoutElements(t *testing.T) {
	cycler := game.NewCycler(nil, tile.South)
	assert.Equal(t, tile.South, cycler.Current())
	assert.Equal(t, tile.West, cycler.Next())

	empty := game.NewCycler([]tile.Wind{}, tile.Wind(0))
	assert.Equal(t, tile.East, empty.Current())
	assert.Equal(t, tile.South, empty.Next())
}

func TestCyclerKeepsItsOwnOrder(t *testing.T) {
	elements := []tile.Wind{tile.East, tile.South}
	cycler := game.NewCycler(elements, tile.East)
	elements[1] = tile.North
	assert.Equal(t, tile.South, cycler.Next())
}
