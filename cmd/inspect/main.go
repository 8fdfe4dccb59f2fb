package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/polyvalue/poly/boxed"
	"github.com/polyvalue/poly/table"
)

func main() {
	var (
		seed        = flag.Int("seed", 4, "Number of demo shapes to preload")
		verbose     = flag.Bool("v", false, "Log lifecycle events to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		table.SetLogger(log)
	}

	tbl, counter, err := buildTable(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer tbl.Close()

	if *interactive {
		if err := runInteractive(tbl, counter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := list(tbl, counter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildTable seeds a table with a mix of concrete shapes, all held through
// the Shape view.
func buildTable(n int) (*table.Table[Shape], *table.Counter, error) {
	tbl := table.New[Shape]()
	counter := &table.Counter{}
	tbl.Subscribe(counter)

	for i := 0; i < n; i++ {
		var (
			b   boxed.Ptr[Shape]
			err error
		)
		if i%2 == 0 {
			b, err = boxed.Make[Shape](Circle{Radius: float64(i + 1)})
		} else {
			b, err = boxed.Make[Shape](Rect{W: float64(i + 1), H: float64(i + 2)})
		}
		if err != nil {
			tbl.Close()
			return nil, nil, fmt.Errorf("seed shape %d: %w", i, err)
		}
		if _, err := tbl.Insert(&b); err != nil {
			tbl.Close()
			return nil, nil, fmt.Errorf("insert shape %d: %w", i, err)
		}
	}
	return tbl, counter, nil
}

func list(tbl *table.Table[Shape], counter *table.Counter) error {
	fmt.Printf("Live boxes: %d\n\n", counter.Live())
	tbl.Each(func(h table.Handle, s Shape) bool {
		fmt.Printf("  #%-3d %-24s area=%.2f\n", h, describe(s), s.Area())
		return true
	})
	return nil
}
