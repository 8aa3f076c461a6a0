// Command kestrel runs a fixed-depth search sweep over a position and
// reports the score and principal variation found by both search variants.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kestrelchess/kestrel/internal/board"
	"github.com/kestrelchess/kestrel/internal/search"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to search, in FEN")
	moves := flag.String("moves", "", "UCI moves to apply to the position before searching")
	depth := flag.Int("depth", 4, "maximum search depth in plies")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", *fen).Msg("invalid position")
	}
	if *depth < 0 {
		log.Fatal().Int("depth", *depth).Msg("depth must be non-negative")
	}

	var ml board.MoveList
	for _, uci := range strings.Fields(*moves) {
		m, err := board.ParseMove(uci, &pos)
		if err != nil {
			log.Fatal().Err(err).Str("move", uci).Msg("invalid move")
		}
		pos.GenerateMovesInto(&ml)
		if !ml.Contains(m) {
			log.Fatal().Str("move", uci).Msg("illegal move")
		}
		pos.ApplyMove(m)
	}

	fmt.Print(pos.String())

	for d := 0; d <= *depth; d++ {
		var exhaustive, pruned search.Result

		// Each variant gets its own history; a search owns its history
		// exclusively for the duration of the call.
		start := time.Now()
		var g errgroup.Group
		g.Go(func() error {
			exhaustive = search.Negamax(board.NewPositionHistory(pos), d)
			return nil
		})
		g.Go(func() error {
			pruned = search.AlphaBeta(board.NewPositionHistory(pos), d)
			return nil
		})
		_ = g.Wait()
		elapsed := time.Since(start)

		if exhaustive.Score != pruned.Score {
			log.Error().
				Int("depth", d).
				Int32("negamax", int32(exhaustive.Score)).
				Int32("alphabeta", int32(pruned.Score)).
				Msg("search variants disagree")
			os.Exit(1)
		}

		log.Info().
			Int("depth", d).
			Int32("score", int32(pruned.Score)).
			Str("pv", formatPV(pruned.PV)).
			Uint64("negamaxNodes", exhaustive.Nodes).
			Uint64("alphabetaNodes", pruned.Nodes).
			Dur("elapsed", elapsed).
			Msg("depth complete")
	}
}

func formatPV(pv []board.Move) string {
	if len(pv) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(pv))
	for _, m := range pv {
		if m == board.NoMove {
			break
		}
		parts = append(parts, m.String())
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
