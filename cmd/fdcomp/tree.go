package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fdcomp/d8"
	"github.com/katalvlaran/fdcomp/drainage"
	"github.com/katalvlaran/fdcomp/geodesy"
	"github.com/katalvlaran/fdcomp/grid"
	"github.com/katalvlaran/fdcomp/internal/export"
	"github.com/katalvlaran/fdcomp/internal/rasterio"
)

type treeFlags struct {
	acc, dir    string
	labels      string
	table       string
	preview     string
	noTransform bool
}

func (a *app) treeCmd() *cobra.Command {
	var f treeFlags
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Label every cell with the channel path that drains it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTree(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.acc, "acc", "", "flow accumulation grid (Esri ASCII)")
	fl.StringVar(&f.dir, "dir", "", "D8 flow direction grid (Esri ASCII)")
	fl.StringVar(&f.labels, "labels", "", "write the label grid here (Esri ASCII)")
	fl.StringVar(&f.table, "table", "", "write the path table here (.csv or .xlsx)")
	fl.StringVar(&f.preview, "preview", "", "write a coloured label preview here (.png)")
	fl.BoolVar(&f.noTransform, "no-transform", false, "skip path lengths")
	fl.String("formula", geodesy.Vincenty.String(), "distance formula: vincenty, cosine or s2")
	fl.Int("preview-scale", 4, "preview pixels per cell")
	cobra.CheckErr(cmd.MarkFlagRequired("acc"))
	cobra.CheckErr(cmd.MarkFlagRequired("dir"))
	cobra.CheckErr(a.v.BindPFlag("formula", fl.Lookup("formula")))
	cobra.CheckErr(a.v.BindPFlag("preview-scale", fl.Lookup("preview-scale")))

	return cmd
}

func (a *app) runTree(cmd *cobra.Command, f treeFlags) error {
	formula, err := geodesy.ParseFormula(a.v.GetString("formula"))
	if err != nil {
		return err
	}
	acc, _, err := readAccumulation(f.acc)
	if err != nil {
		return err
	}
	dir, hdr, err := readDirections(f.dir)
	if err != nil {
		return err
	}

	opts := []drainage.Option{
		drainage.WithFormula(formula),
		drainage.WithContext(cmd.Context()),
		drainage.WithLogger(a.log),
	}
	if !f.noTransform {
		opts = append(opts, drainage.WithTransform(hdr.Transform()))
	}
	tree, err := drainage.BuildTree(acc, dir, opts...)
	if err != nil {
		return err
	}

	if f.labels != "" {
		h := hdr
		h.NoData, h.HasNoData = 0, true
		if err = rasterio.WriteFile(f.labels, h, tree.Labels); err != nil {
			return err
		}
	}
	if f.table != "" {
		if err = export.WriteTable(f.table, tree.Paths); err != nil {
			return err
		}
	}
	if f.preview != "" {
		if err = export.SavePreview(f.preview, tree.Labels, a.v.GetInt("preview-scale")); err != nil {
			return err
		}
	}

	a.log.WithFields(logrus.Fields{
		"paths":   len(tree.Paths),
		"cells":   tree.Paths.TotalCells(),
		"formula": formula,
	}).Info("tree built")
	_, err = fmt.Fprintf(a.out, "paths=%d cells=%d\n", len(tree.Paths), tree.Paths.TotalCells())

	return err
}

func readAccumulation(path string) (*grid.Grid[uint32], rasterio.Header, error) {
	r, err := rasterio.ReadFile(path)
	if err != nil {
		return nil, rasterio.Header{}, err
	}
	g, err := r.AccumulationGrid()
	if err != nil {
		return nil, rasterio.Header{}, fmt.Errorf("%s: %w", path, err)
	}

	return g, r.Header, nil
}

func readDirections(path string) (*grid.Grid[d8.Code], rasterio.Header, error) {
	r, err := rasterio.ReadFile(path)
	if err != nil {
		return nil, rasterio.Header{}, err
	}
	g, err := r.DirectionGrid()
	if err != nil {
		return nil, rasterio.Header{}, fmt.Errorf("%s: %w", path, err)
	}

	return g, r.Header, nil
}
