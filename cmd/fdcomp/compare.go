package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fdcomp/compare"
	"github.com/katalvlaran/fdcomp/drainage"
	"github.com/katalvlaran/fdcomp/internal/export"
)

type compareFlags struct {
	fine, coarse string
	table        string
	out          string
}

func (a *app) compareCmd() *cobra.Command {
	var f compareFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Score how well a coarse direction grid follows the fine paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCompare(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.fine, "fine", "", "fine D8 direction grid (Esri ASCII)")
	fl.StringVar(&f.coarse, "coarse", "", "coarse D8 direction grid (Esri ASCII)")
	fl.StringVar(&f.table, "table", "", "path table from the tree command (.csv or .xlsx)")
	fl.StringVar(&f.out, "out", "", "write per-path scores here (.csv)")
	fl.String("membership", compare.CoarseCells.String(), "coarse start cell rule: coarse or legacy")
	for _, name := range []string{"fine", "coarse", "table"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}
	cobra.CheckErr(a.v.BindPFlag("membership", fl.Lookup("membership")))

	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, f compareFlags) error {
	mode, err := compare.ParseMembership(a.v.GetString("membership"))
	if err != nil {
		return err
	}
	fine, _, err := readDirections(f.fine)
	if err != nil {
		return err
	}
	coarse, _, err := readDirections(f.coarse)
	if err != nil {
		return err
	}
	paths, err := export.ReadTable(f.table)
	if err != nil {
		return err
	}

	scores, err := compare.Compare(fine, coarse, paths,
		compare.WithMembership(mode),
		compare.WithContext(cmd.Context()),
		compare.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	if f.out != "" {
		if err = writeScores(f.out, paths, scores); err != nil {
			return err
		}
	}

	s, err := compare.Summarize(scores, compare.CellWeights(paths))
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"paths":      s.Count,
		"membership": mode,
	}).Info("comparison done")
	_, err = fmt.Fprintf(a.out, "paths=%d mean=%.4f sd=%.4f min=%.4f max=%.4f weighted=%.4f\n",
		s.Count, s.Mean, s.StdDev, s.Min, s.Max, s.WeightedMean)

	return err
}

func writeScores(path string, paths drainage.PathTable, scores []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = export.WriteScoresCSV(f, paths, scores); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
