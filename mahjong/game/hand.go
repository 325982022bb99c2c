package game

import (
	"strings"

	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/util"
)

const handHeader = "- Hand -"

type Hand struct {
	tiles []tile.Tile
}

// NewHand takes ownership of tiles. Count and legality are not checked.
func NewHand(tiles []tile.Tile) *Hand {
	if tiles == nil {
		tiles = make([]tile.Tile, 0, 14)
	}
	return &Hand{tiles: tiles}
}

func (h *Hand) AddTile(t tile.Tile) {
	h.tiles = append(h.tiles, t)
}

func (h *Hand) AddTiles(tiles []tile.Tile) {
	h.tiles = append(h.tiles, tiles...)
}

func (h *Hand) Sort() {
	tile.Sort(h.tiles)
}

func (h *Hand) Tiles() []tile.Tile {
	return util.SliceCopy(h.tiles)
}

func (h *Hand) Empty() bool {
	return len(h.tiles) == 0
}

// RemoveTile removes a single copy of t, keeping the order of the rest.
func (h *Hand) RemoveTile(t tile.Tile) bool {
	index := util.IndexOf(t, h.tiles)
	if index < 0 {
		return false
	}
	h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
	return true
}

func (h *Hand) Size() int {
	return len(h.tiles)
}

func (h *Hand) String() string {
	return h.render(tile.Tile.String)
}

// Paint is String with each tile coloured for the terminal.
func (h *Hand) Paint() string {
	return h.render(tile.Tile.Paint)
}

func (h *Hand) render(format func(tile.Tile) string) string {
	var buf strings.Builder
	buf.WriteString(handHeader + "\n")
	for _, t := range h.tiles {
		buf.WriteString(format(t) + "\n")
	}
	return buf.String()
}
