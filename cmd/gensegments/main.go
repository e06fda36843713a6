// Command gensegments generates randomized line-segment sets for exercising
// the sweep engine, and can pipe a generated (or hand-written) set straight
// through RunSweepLine. It is the CLI external collaborator named out of
// scope for the algorithm itself (§1, §8 of the design notes): the engine
// accepts no I/O of its own.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/sweep"
	"github.com/urfave/cli/v3"
)

// jsonSegment is the on-disk representation of a segment: a pair of [x, y]
// coordinate pairs.
type jsonSegment [2][2]float64

func main() {
	cmd := &cli.Command{
		Name:  "gensegments",
		Usage: "generate randomized line segments, or run the sweep engine over a segment file",
		Commands: []*cli.Command{
			genCommand(),
			runCommand(),
		},
		HideVersion: true,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func genCommand() *cli.Command {
	return &cli.Command{
		Name:      "gen",
		Usage:     "generate random line segments and print them to stdout as JSON",
		UsageText: "gensegments gen --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "number",
				Usage:   "the number of segments to create",
				Value:   3,
				Aliases: []string{"n"},
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Usage: "maximum X value of the plane", Value: 10},
			&cli.IntFlag{Name: "minx", Usage: "minimum X value of the plane", Value: 0},
			&cli.IntFlag{Name: "maxy", Usage: "maximum Y value of the plane", Value: 10},
			&cli.IntFlag{Name: "miny", Usage: "minimum Y value of the plane", Value: 0},
		},
		Action: genAction,
	}
}

func genAction(_ context.Context, cmd *cli.Command) error {
	minx, maxx := cmd.Int("minx"), cmd.Int("maxx")
	miny, maxy := cmd.Int("miny"), cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	out := make([]jsonSegment, n)
	for i := int64(0); i < n; i++ {
		for {
			x1, y1 := randomIntInRange(minx, maxx), randomIntInRange(miny, maxy)
			x2, y2 := randomIntInRange(minx, maxx), randomIntInRange(miny, maxy)
			if x1 == x2 && y1 == y2 {
				continue
			}
			out[i] = jsonSegment{{float64(x1), float64(y1)}, {float64(x2), float64(y2)}}
			break
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "read a segment JSON file and run the sweep engine over it",
		UsageText: "gensegments run <path>",
		Action:    runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 1 {
		return fmt.Errorf("expected exactly one argument: path to a segment JSON file")
	}
	path := args.Get(0)

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var raw []jsonSegment
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	segments := make([][2]point.Point, len(raw))
	for i, s := range raw {
		segments[i] = [2]point.Point{
			point.New(s[0][0], s[0][1]),
			point.New(s[1][0], s[1][1]),
		}
	}

	snapped, events, err := sweep.RunSweepLine(ctx, segments)
	if err != nil {
		return fmt.Errorf("running sweep: %w", err)
	}

	fmt.Println("snapped segments:")
	for i, s := range snapped {
		fmt.Printf("  [%d] %s\n", i, s)
	}

	fmt.Println("events:")
	for _, e := range events {
		kind := "endpoint"
		if e.IsIntersection() {
			kind = "intersection"
		}
		parts := make([]string, 0, len(e.Participants))
		for p := range e.Participants {
			parts = append(parts, p.String())
		}
		fmt.Printf("  %s (%s) %v\n", e.Point, kind, parts)
	}
	return nil
}
