package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/takugotora12/app05game/prefabs"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println(err)
	}

	debug := flag.Bool("debug", envBool("APP05_DEBUG"), "draw collision circles and log state changes")
	seed := flag.Uint64("seed", envUint("APP05_SEED"), "random seed (0 picks one)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningName := flag.String("tuning", envString("APP05_TUNING", prefabs.TuningFile), "tuning file in prefabs/")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	log.Printf("seed %d", *seed)

	game, err := NewGame(tuning, *tuningName, *seed, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(int(tuning.Field.Width), int(tuning.Field.Height))
	ebiten.SetWindowTitle(tuning.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envUint(key string) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
