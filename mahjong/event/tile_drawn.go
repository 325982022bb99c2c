package event

import "github.com/ratel-online/mahjong/mahjong/tile"

// TileDrawn fires when Table.DrawTile moves a wall tile into a hand.
var TileDrawn = &tileDrawnEmitter{}

type TileDrawnPayload struct {
	Seat tile.Wind
	Tile tile.Tile
	Left int
}

type TileDrawnListener interface {
	OnTileDrawn(TileDrawnPayload)
}

type tileDrawnEmitter struct {
	listeners []TileDrawnListener
}

func (e *tileDrawnEmitter) AddListener(listener TileDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *tileDrawnEmitter) Emit(payload TileDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnTileDrawn(payload)
	}
}
