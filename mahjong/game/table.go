package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/event"
	"github.com/ratel-online/mahjong/mahjong/tile"
)

// Table seats one hand per wind and deals them from a shared wall.
type Table struct {
	wall   *Wall
	hands  map[tile.Wind]*Hand
	cycler *Cycler
}

func NewTable(wall *Wall, dealer tile.Wind) *Table {
	seats := make([]tile.Wind, consts.Seats)
	copy(seats, tile.Winds)
	hands := make(map[tile.Wind]*Hand, consts.Seats)
	for _, seat := range seats {
		hands[seat] = NewHand(nil)
	}
	return &Table{
		wall:   wall,
		hands:  hands,
		cycler: NewCycler(seats, dealer),
	}
}

func (t *Table) Wall() *Wall {
	return t.wall
}

func (t *Table) Dealer() tile.Wind {
	return t.cycler.Current()
}

// Seats lists the seat winds in dealing order, dealer first.
func (t *Table) Seats() []tile.Wind {
	seats := make([]tile.Wind, 0, consts.Seats)
	t.cycler.ForEach(func(seat tile.Wind) {
		seats = append(seats, seat)
	})
	return seats
}

func (t *Table) Hand(seat tile.Wind) (*Hand, bool) {
	hand, ok := t.hands[seat]
	return hand, ok
}

// Deal gives every seat HandSize tiles, dealer first. Nothing is dealt
// when the wall cannot cover all seats.
func (t *Table) Deal() error {
	need := consts.HandSize * consts.Seats
	if t.wall.Size() < need {
		log.Infof("deal needs %d tiles, wall has %d\n", need, t.wall.Size())
		return consts.ErrorsWallExhausted
	}
	var err error
	t.cycler.ForEach(func(seat tile.Wind) {
		if err != nil {
			return
		}
		tiles, ok := t.wall.DrawHand(consts.HandSize)
		if !ok {
			err = consts.ErrorsWallExhausted
			return
		}
		t.hands[seat].AddTiles(tiles)
		log.Infof("dealt %s to %s, %d left\n", tile.ToTileString(tiles), seat, t.wall.Size())
		event.HandDealt.Emit(event.HandDealtPayload{
			Seat:  seat,
			Tiles: tiles,
			Left:  t.wall.Size(),
		})
	})
	return err
}

// DrawTile moves the next wall tile into the hand at seat.
func (t *Table) DrawTile(seat tile.Wind) (tile.Tile, error) {
	hand, ok := t.hands[seat]
	if !ok {
		return 0, consts.ErrorsSeatInvalid
	}
	drawn, ok := t.wall.Pop()
	if !ok {
		return 0, consts.ErrorsWallExhausted
	}
	hand.AddTile(drawn)
	event.TileDrawn.Emit(event.TileDrawnPayload{
		Seat: seat,
		Tile: drawn,
		Left: t.wall.Size(),
	})
	return drawn, nil
}
