// Command cli renders audit report JSON into a standalone HTML page,
// with an optional PDF summary and a per-category terminal summary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/love0324/lighthouse/pkg/audit"
	"github.com/love0324/lighthouse/pkg/config"
	"github.com/love0324/lighthouse/pkg/details"
	"github.com/love0324/lighthouse/pkg/dom"
	"github.com/love0324/lighthouse/pkg/render"
	"github.com/love0324/lighthouse/pkg/ui"
	"github.com/love0324/lighthouse/pkg/writers"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitFailure = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lighthouse-render", flag.ContinueOnError)
	var (
		input      = fs.String("input", "", "report JSON file (required)")
		output     = fs.String("output", "report.html", "HTML output file")
		pdfOut     = fs.String("pdf", "", "optional PDF summary output file")
		categoryID = fs.String("category", "", "render only this category id")
		configPath = fs.String("config", "", "optional YAML renderer config")
		quiet      = fs.Bool("quiet", false, "suppress the terminal summary")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "error: -input is required")
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: read report: %v\n", err)
		return exitFailure
	}
	rep, err := audit.ParseReport(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	cats := rep.SortedCategories()
	if *categoryID != "" {
		cat, ok := rep.Categories[*categoryID]
		if !ok {
			fmt.Fprintf(os.Stderr, "error: report has no category %q\n", *categoryID)
			return exitFailure
		}
		cats = []*audit.Category{cat}
	}
	if len(cats) == 0 {
		fmt.Fprintln(os.Stderr, "error: report has no categories")
		return exitFailure
	}

	doc := dom.Components()
	renderer := render.New(doc, details.NewRenderer(doc), cfg)

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: create output: %v\n", err)
		return exitFailure
	}
	defer out.Close()

	dw, err := writers.NewDocumentWriter(out, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}
	dw.SetSourceFingerprint(data)

	var pdf *writers.PDFWriter
	if *pdfOut != "" {
		pdf = writers.NewPDFWriter(cfg)
	}

	for _, cat := range cats {
		section := renderer.Render(cat, rep.CategoryGroups)
		if err := dw.Add(section); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitFailure
		}
		summary := render.Summarize(cat)
		if pdf != nil {
			pdf.AddCategory(cat, summary)
		}
		if !*quiet {
			ui.PrintCategorySummary(os.Stdout, cat, summary)
		}
	}

	if err := dw.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitFailure
	}

	if pdf != nil {
		f, err := os.Create(*pdfOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: create pdf: %v\n", err)
			return exitFailure
		}
		defer f.Close()
		if err := pdf.Output(f); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return exitFailure
		}
	}

	return exitOK
}
