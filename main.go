package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/parade/config"
	"github.com/ratel-online/parade/consts"
	"github.com/ratel-online/parade/parade/card/color"
	"github.com/ratel-online/parade/parade/game"
	"github.com/ratel-online/parade/parade/player"
	"github.com/ratel-online/parade/parade/ui"
	"github.com/ratel-online/parade/render"
)

const (
	menuPlay = iota + 1
	menuRules
	menuQuit
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	seed, err := cfg.ResolveSeed()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	color.SetEnabled(!cfg.NoColor)
	ui.SetDelay(cfg.Delay)
	log.Infof("parade seed %d\n", seed)

	rng := rand.New(rand.NewSource(seed))
	ui.Listen()
	ui.Message.Welcome()
	for {
		ui.Message.Menu()
		switch ui.PromptIntegerInRange(menuPlay, menuQuit, "Choose an option:") {
		case menuPlay:
			if err := play(rng); err != nil {
				var gameErr consts.Error
				if errors.As(err, &gameErr) && !gameErr.Exit {
					ui.Println(gameErr.Msg)
				} else {
					log.Errorf("game aborted: %v\n", err)
				}
			}
			if !ui.PromptYesNo("Do you want to play another game?") {
				ui.Message.Goodbye()
				return
			}
		case menuRules:
			ui.Message.Instructions()
		case menuQuit:
			ui.Message.Goodbye()
			return
		}
	}
}

func play(rng *rand.Rand) error {
	g, err := game.New(player.SetupPlayers(rng), rng)
	if err != nil {
		return err
	}
	result, err := g.Run()
	if err != nil {
		return err
	}
	if result.Abandoned {
		ui.Message.GameOver()
		return nil
	}
	ui.Print(render.Flipped(result.Flipped, result.Ranking))
	ui.Print(render.OpenCards(result.Ranking))
	ui.Print(render.Podium(result.Ranking))
	table, err := render.Ranking(result.Ranking)
	if err != nil {
		return err
	}
	ui.Print(table)
	return nil
}
