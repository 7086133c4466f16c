package main

// gview-layout places the features of a region file into a view window and
// packs them into display rows, writing one TSV row per placement.
//
// Example:
//
//    gview-layout -regions hg19.tsv -view chr7:27000000-27200000 -width 1200

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/base/vcontext"

	"github.com/gvizlab/genomeview/drawing"
	"github.com/gvizlab/genomeview/interval"
	"github.com/gvizlab/genomeview/layout"
	"github.com/gvizlab/genomeview/navcontext"
	"github.com/gvizlab/genomeview/placement"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: gview-layout -regions <path> -view <locus or feature name> [flags]

Loads an ordered region file, projects its features into the requested view
window, and assigns each placement a display row.  Output is TSV on stdout.

Flags:
`)
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	var (
		regionsPath = flag.String("regions", "", "TSV region file defining the navigation context (name, chrom, start, end).")
		contextName = flag.String("name", "genomeview", "Name of the navigation context.")
		viewStr     = flag.String("view", "", "View window, either \"chr:start-end\" or a feature name.")
		width       = flag.Int("width", 800, "View width in pixels.")
		maxRows     = flag.Int("max-rows", layout.DefaultMaxRows, "Number of display rows available.")
		padding     = flag.Int("padding", 0, "Horizontal padding in pixels reserved on each side of a placement.")
	)
	cleanup := grail.Init()
	defer cleanup()
	if *regionsPath == "" || *viewStr == "" {
		usage()
	}
	ctx := vcontext.Background()

	c, err := navcontext.Load(ctx, *contextName, *regionsPath)
	if err != nil {
		log.Fatalf("load %s: %v", *regionsPath, err)
	}
	window, err := c.Parse(*viewStr)
	if err != nil {
		log.Fatalf("parse view %q: %v", *viewStr, err)
	}

	view := placement.View{Context: c, Window: window}
	placed := placement.PlaceFeatures(view, c.Features(), *width)
	spans := make([]interval.OpenInterval, len(placed))
	for i, p := range placed {
		spans[i] = p.ContextSpan
	}
	model := drawing.NewLinearModel(window, *width)
	arranger := layout.NewArranger(model,
		layout.MaxRows(*maxRows),
		layout.Padding(func(interval.OpenInterval) int { return *padding }))
	rows := arranger.Arrange(spans)

	w := tsv.NewWriter(os.Stdout)
	w.WriteString("name")
	w.WriteString("locus")
	w.WriteString("context_start")
	w.WriteString("context_end")
	w.WriteString("x_start")
	w.WriteString("x_end")
	w.WriteString("row")
	if err := w.EndLine(); err != nil {
		log.Fatalf("write output: %v", err)
	}
	for i, p := range placed {
		w.WriteString(p.Feature.Name)
		w.WriteString(p.VisiblePart.Locus().String())
		w.WriteInt64(int64(p.ContextSpan.Start))
		w.WriteInt64(int64(p.ContextSpan.End))
		w.WriteInt64(int64(p.XSpan.Start))
		w.WriteInt64(int64(p.XSpan.End))
		w.WriteInt64(int64(rows[i]))
		if err := w.EndLine(); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("flush output: %v", err)
	}
	log.Printf("placed %d feature(s) in %s, %d row(s) available", len(placed), window, *maxRows)
}
