// Command puzzlebench exercises setup, proving, accumulation and
// verification end to end, for manual benchmarking of a single epoch
// round. It is a thin driver, not part of the core puzzle logic.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	puzzle "github.com/giuliop/coinbase-puzzle"
)

func main() {
	app := &cli.App{
		Name:  "puzzlebench",
		Usage: "benchmark a single coinbase-puzzle epoch round",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "degree",
				Usage: "epoch challenge polynomial degree",
				Value: 63,
			},
			&cli.IntFlag{
				Name:  "solutions",
				Usage: "number of prover addresses to simulate",
				Value: 16,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug-level logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	degree := c.Uint64("degree")
	nSolutions := c.Int("solutions")

	srs, err := puzzle.Setup(4*degree, rand.Reader)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	pk, vk, err := puzzle.Trim(srs, 2*degree)
	if err != nil {
		return fmt.Errorf("trim: %w", err)
	}

	info := puzzle.Info(1)
	ch := puzzle.InitForEpoch(info, degree)

	start := time.Now()
	solutions := make([]puzzle.Solution, 0, nSolutions)
	for i := 0; i < nSolutions; i++ {
		var addr puzzle.Address
		addr[0] = byte(i)
		addr[1] = byte(i >> 8)
		sol, err := puzzle.Prove(pk, info, ch, addr, uint64(i))
		if err != nil {
			return fmt.Errorf("prove(%d): %w", i, err)
		}
		solutions = append(solutions, sol)
	}
	log.Info().Dur("elapsed", time.Since(start)).Int("count", nSolutions).Msg("proving complete")

	start = time.Now()
	combined, err := puzzle.Accumulate(pk, info, ch, solutions)
	if err != nil {
		return fmt.Errorf("accumulate: %w", err)
	}
	log.Info().Dur("elapsed", time.Since(start)).Int("retained", len(combined.Individual)).Msg("accumulation complete")

	start = time.Now()
	ok := puzzle.Verify(vk, info, ch, combined)
	log.Info().Dur("elapsed", time.Since(start)).Bool("ok", ok).Msg("verification complete")

	if !ok {
		return fmt.Errorf("combined solution failed verification")
	}
	return nil
}
