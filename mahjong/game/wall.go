package game

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/tile"
	"github.com/ratel-online/mahjong/mahjong/util"
)

// Wall is the tile supply of one session. Tiles are drawn from the end.
type Wall struct {
	tiles []tile.Tile
}

// NewWall returns an unshuffled wall holding every identity CopiesPerTile times.
func NewWall() *Wall {
	wall := &Wall{}
	fillWall(wall)
	return wall
}

func (w *Wall) Size() int {
	return len(w.tiles)
}

func (w *Wall) Empty() bool {
	return len(w.tiles) == 0
}

func (w *Wall) Shuffle() {
	shuffleTiles(w.tiles)
}

// Pop removes the last tile. ok is false when the wall is empty.
func (w *Wall) Pop() (t tile.Tile, ok bool) {
	if w.Empty() {
		return 0, false
	}
	t = w.tiles[len(w.tiles)-1]
	w.tiles = w.tiles[:len(w.tiles)-1]
	return t, true
}

// DrawHand pops count tiles, first popped first. When the wall runs out
// the popped tiles are put back in their original positions and ok is false.
func (w *Wall) DrawHand(count int) (tiles []tile.Tile, ok bool) {
	if count < 0 {
		count = 0
	}
	tiles = make([]tile.Tile, 0, count)
	for i := 0; i < count; i++ {
		t, popped := w.Pop()
		if !popped {
			w.restore(tiles)
			return nil, false
		}
		tiles = append(tiles, t)
	}
	return tiles, true
}

func (w *Wall) restore(drawn []tile.Tile) {
	back := util.SliceCopy(drawn)
	util.Reverse(back)
	w.tiles = append(w.tiles, back...)
}

// Census counts the remaining copies per identity.
func (w *Wall) Census() map[tile.Tile]int {
	return util.Census(w.tiles)
}

func fillWall(wall *Wall) {
	tiles := make([]tile.Tile, 0, consts.WallSize)
	generate := func(t tile.Tile) []tile.Tile {
		ret := make([]tile.Tile, 0, consts.CopiesPerTile)
		for i := 0; i < consts.CopiesPerTile; i++ {
			ret = append(ret, t)
		}
		return ret
	}
	for _, suit := range tile.Suits {
		for _, rank := range tile.Ranks {
			tiles = append(tiles, generate(tile.Numbered(suit, rank))...)
		}
	}
	for _, wind := range tile.Winds {
		tiles = append(tiles, generate(tile.OfWind(wind))...)
	}
	for _, dragon := range tile.Dragons {
		tiles = append(tiles, generate(tile.OfDragon(dragon))...)
	}
	wall.tiles = tiles
}

// shuffleTiles 洗牌
func shuffleTiles(tiles []tile.Tile) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}
