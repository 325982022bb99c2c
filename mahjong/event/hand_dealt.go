package event

import "github.com/ratel-online/mahjong/mahjong/tile"

// HandDealt fires once per seat as Table.Deal hands out its tiles.
var HandDealt = &handDealtEmitter{}

type HandDealtPayload struct {
	Seat  tile.Wind
	Tiles []tile.Tile
	Left  int
}

type HandDealtListener interface {
	OnHandDealt(HandDealtPayload)
}

type handDealtEmitter struct {
	listeners []HandDealtListener
}

func (e *handDealtEmitter) AddListener(listener HandDealtListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *handDealtEmitter) Emit(payload HandDealtPayload) {
	for _, listener := range e.listeners {
		listener.OnHandDealt(payload)
	}
}
