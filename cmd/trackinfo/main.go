// trackinfo prints spacing statistics for a previously generated
// coordinates file, by re-walking the track point by point.
package main

import (
	"flag"
	"fmt"
	"os"

	"trackgen/pkg/export"
	"trackgen/pkg/track"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <coordinates.json>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	for _, path := range flag.Args() {
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func inspect(path string) error {
	t, err := export.ReadJSON(path)
	if err != nil {
		return err
	}

	s := track.Summarize(t)
	fmt.Printf("%s: %d points\n", path, s.Points)
	if s.Points < 2 {
		return nil
	}
	fmt.Printf("  total distance: %.1f km\n", s.TotalDistance/1000)
	fmt.Printf("  spacing min/avg/max: %.1f / %.1f / %.1f meters\n",
		s.MinSpacing, s.MeanSpacing, s.MaxSpacing)
	fmt.Printf("  overall bearing: %.0f°\n", s.Bearing)
	return nil
}
