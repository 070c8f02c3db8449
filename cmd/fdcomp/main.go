// Command fdcomp builds drainage trees from D8 rasters and scores coarse
// direction grids against the paths of a fine one.
//
//	fdcomp tree --acc acc.asc --dir dir.asc --table paths.csv --labels labels.asc
//	fdcomp compare --fine dir.asc --coarse dir_coarse.asc --table paths.csv
package main

import (
	"context"
	"os"
	"os/signal"
)

// Version is set by ldflags during build.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
