// Command fiberdemo schedules a handful of yielding fibers and shows them
// round-robin through the cooperative scheduler, one color per fiber.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mattn/go-colorable"
	"github.com/sugawarayuuta/sonnet"

	"github.com/tinysched/fiber"
)

var colors = []int{31, 32, 33, 34, 35, 36}

func main() {
	configPath := flag.String("config", "", "path to a YAML scheduler config")
	fibers := flag.Int("fibers", 3, "number of fibers to schedule")
	steps := flag.Int("steps", 10, "yielding iterations per fiber")
	flag.Parse()

	var cfg fiber.Config
	if *configPath != "" {
		var err error
		cfg, err = fiber.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	out := colorable.NewColorableStdout()
	s := fiber.NewCooperative(cfg)
	for i := 0; i < *fibers; i++ {
		id := i
		err := s.Schedule(func() {
			for step := 0; step < *steps; step++ {
				color := colors[id%len(colors)]
				fmt.Fprintf(out, "\x1b[%dmfiber %d: step %d/%d\x1b[0m\n", color, id, step+1, *steps)
				s.Yield()
			}
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	s.Run()

	stats, err := sonnet.Marshal(s.Stats())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(out, "stats: %s\n", stats)

	if err := s.Close(); err != nil {
		log.Fatal(err)
	}
}
