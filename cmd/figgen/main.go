// figgen renders the review's figure set.
//
// Running it with no arguments generates all twelve publication figures as
// PDFs under ./figures, printing one narration line per figure and a summary
// listing afterward. Every dataset is compiled in; there is nothing to load.
//
// Design notes:
//   - Figures are rendered strictly sequentially in the manuscript's order;
//     no figure reads another's output.
//   - A curve fit that fails to converge costs only its overlay; the figure
//     is still produced. Any other failure aborts the whole batch.
//   - -previews additionally writes quick-look PNGs (raster, coarse styling)
//     under <out>/previews for fast review cycles.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bioreactorlab/WoodchipFigures/src/figures"
)

func main() {
	outDir := flag.String("out", "figures", "Output directory for figure artifacts")
	format := flag.String("format", "pdf", "Artifact format (pdf|png|svg)")
	only := flag.String("only", "", "Render a single figure by slug (see -list)")
	list := flag.Bool("list", false, "List figure slugs and titles, then exit")
	previews := flag.Bool("previews", false, "Also write quick-look PNG previews")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	figures.SetLogLevel(*logLevel)

	if *list {
		for _, f := range figures.All() {
			fmt.Printf("%-42s %s\n", f.Slug, f.Title)
		}
		return
	}

	switch *format {
	case "pdf", "png", "svg":
	default:
		figures.Errorf("unsupported format %q (want pdf, png or svg)", *format)
		os.Exit(2)
	}

	opts := figures.Options{OutDir: *outDir, Format: *format}

	if *only != "" {
		if err := renderOne(*only, opts); err != nil {
			figures.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	paths, err := figures.RenderAll(opts)
	if err != nil {
		figures.Errorf("batch aborted: %v", err)
		os.Exit(1)
	}

	if *previews {
		if err := figures.RenderPreviews(filepath.Join(*outDir, "previews")); err != nil {
			figures.Errorf("previews: %v", err)
			os.Exit(1)
		}
	}

	figures.Infof("all %d figures generated successfully", len(paths))
	fmt.Println("\nFigures created:")
	for _, p := range paths {
		fmt.Printf("  • %s\n", p)
	}
}

func renderOne(slug string, opts figures.Options) error {
	for _, f := range figures.All() {
		if f.Slug == slug {
			if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
				return fmt.Errorf("create out dir: %w", err)
			}
			figures.Infof("creating %s: %s...", f.Slug, f.Title)
			return f.Render(opts)
		}
	}
	return fmt.Errorf("unknown figure slug %q (use -list)", slug)
}
