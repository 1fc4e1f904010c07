package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/HuXin0817/weiqi/pkg/models/message/moverecord"
	"github.com/HuXin0817/weiqi/pkg/models/model"
	"github.com/HuXin0817/weiqi/pkg/models/weiqi"
	"github.com/HuXin0817/weiqi/pkg/pprof"
	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	height   = flag.Int("height", 9, "board height")
	width    = flag.Int("width", 9, "board width")
	games    = flag.Int("games", 20, "number of games")
	maxMoves = flag.Int("moves", 250, "move limit per game")
	seed     = flag.Int64("seed", 0, "random seed, 0 for the current time")
	suicide  = flag.String("suicide", "Off", "allow suicide")
	superko  = flag.String("superko", "On", "forbid repeating positions")
	profile  = flag.String("pprof", "", "serve profiles on this address")
)

func main() {
	flag.Parse()
	logx.DisableStat()

	rules := weiqi.DefaultRules()
	for _, sw := range []struct {
		value  string
		target *bool
	}{{*suicide, &rules.Local.SuicideAllowed}, {*superko, &rules.Superko}} {
		c, err := model.ParseConfig(sw.value)
		logx.Must(err)
		*sw.target = bool(c)
	}

	if *profile != "" {
		pprof.Serve(*profile)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	opts := Options{Height: *height, Width: *width, MaxMoves: *maxMoves, Rules: rules}
	records := moverecord.NewMemoryStore()
	ctx := context.Background()

	var total Stats
	bar := model.NewBar(*games, fmt.Sprintf("%dx%d playouts", *height, *width), aurora.YellowFg)
	begin := time.Now()

	for range *games {
		stats, err := Playout(ctx, rng, opts, records)
		total.add(stats)
		if err != nil {
			bar.Close()
			fmt.Println(aurora.Red(fmt.Sprintf("FAIL seed=%d: %v", *seed, err)))
			logx.Must(err)
		}
		bar.Add(1)
	}
	bar.Close()

	fmt.Println()
	fmt.Println(aurora.Green(fmt.Sprintf("OK %d games in %s (seed %d)", total.Games, time.Since(begin).Round(time.Millisecond), *seed)))
	fmt.Printf("moves %s  captures %s  passes %s  rejected %s\n",
		aurora.Bold(total.Moves), aurora.Bold(total.Captures), aurora.Bold(total.Passes), aurora.Bold(total.Rejected))
}
