// Package main walks the route of one or more boards and prints the final
// password for each.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gridkit/internal/board"
	"github.com/cory-johannsen/gridkit/internal/config"
	"github.com/cory-johannsen/gridkit/internal/observability"
	"github.com/cory-johannsen/gridkit/internal/route"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	boardPath := flag.String("board", "", "path to a board YAML file")
	boardDir := flag.String("boards", "", "path to a directory of board YAML files")
	flag.Parse()

	if (*boardPath == "") == (*boardDir == "") {
		fmt.Fprintln(os.Stderr, "usage: gridwalk [-config <file>] (-board <file> | -boards <dir>)")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var boards []*board.Board
	if *boardPath != "" {
		b, err := board.LoadBoardFromFile(*boardPath)
		if err != nil {
			logger.Fatal("loading board", zap.Error(err))
		}
		boards = []*board.Board{b}
	} else {
		boards, err = board.LoadBoardsFromDir(*boardDir)
		if err != nil {
			logger.Fatal("loading boards", zap.Error(err))
		}
	}
	logger.Info("boards loaded", zap.Int("count", len(boards)))

	walker := route.NewWalker(logger, cfg.Walk.MaxSteps)
	for _, b := range boards {
		res, err := walker.Walk(b)
		if err != nil {
			logger.Fatal("walking board", zap.String("board", b.Name), zap.Error(err))
		}
		fmt.Fprintf(os.Stdout, "%s: password=%d position=%s facing=%s steps=%d\n",
			b.Name, res.Password(), res.Position, res.Facing, res.Steps)
		if cfg.Render.Trail {
			if err := route.RenderTrail(os.Stdout, b, res, cfg.Render.EmptyRune()); err != nil {
				logger.Fatal("rendering trail", zap.String("board", b.Name), zap.Error(err))
			}
		}
	}

	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
}
