// Command gensegments generates random line segments in a plane and writes
// them to stdout as JSON, in the format the sweep library (un)marshals. It
// exists to produce inputs for fuzzing and benchmarking the intersection
// algorithms.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/go-sweep/sweep/segment"
)

func main() {
	cmd := &cli.Command{
		Name:      "gensegments",
		Usage:     "Generates random line segments in a plane and outputs results to stdout as JSON",
		UsageText: "gensegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func app(_ context.Context, cmd *cli.Command) error {

	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	// sanity checks
	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	output := make([]segment.Segment, n)

	for i := int64(0); i < n; i++ {
		for {
			seg, err := segment.New(
				randomIntInRange(minx, maxx),
				randomIntInRange(miny, maxy),
				randomIntInRange(minx, maxx),
				randomIntInRange(miny, maxy),
			)
			// retry degenerate segments
			if err == nil {
				output[i] = seg
				break
			}
		}
	}
	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
