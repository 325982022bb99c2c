package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/mahjong/consts"
	"github.com/ratel-online/mahjong/mahjong/game"
)

// stdout writes through the colour-aware terminal writer.
var stdout io.Writer = color.Output

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(stdout, game.NewWall()); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// run shuffles the wall, deals one hand and prints it as drawn and sorted.
func run(out io.Writer, wall *game.Wall) error {
	wall.Shuffle()
	tiles, ok := wall.DrawHand(consts.HandSize)
	if !ok {
		return consts.ErrorsWallExhausted
	}
	hand := game.NewHand(tiles)
	fmt.Fprintln(out, hand.Paint())
	hand.Sort()
	fmt.Fprintln(out, hand.Paint())
	return nil
}
