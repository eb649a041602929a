// Command decorpreview renders a window decoration to a PNG file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/decor"
	"github.com/gogpu/decor/recording"
	"github.com/gogpu/decor/surface"
)

type config struct {
	width, height int
	title         string
	flags         decor.FrameFlags
	output        string
	point         string
	commands      bool
}

func main() {
	var (
		width     = flag.Int("width", 400, "window width including the shadow margin")
		height    = flag.Int("height", 300, "window height including the shadow margin")
		title     = flag.String("title", "Message", "window title, empty for none")
		active    = flag.Bool("active", true, "draw the active frame")
		maximized = flag.Bool("maximized", false, "draw a maximized frame without shadow")
		output    = flag.String("o", "decor.png", "output file")
		point     = flag.String("point", "", "classify the point x,y and print its location")
		commands  = flag.Bool("commands", false, "print the recorded drawing commands")
		verbose   = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		decor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config{
		width:    *width,
		height:   *height,
		title:    *title,
		output:   *output,
		point:    *point,
		commands: *commands,
	}
	if *active {
		cfg.flags |= decor.FrameActive
	}
	if *maximized {
		cfg.flags |= decor.FrameMaximized
	}
	if *title == "" {
		cfg.flags |= decor.FrameNoTitle
	}

	n, err := run(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Frame %v saved to %s (%dx%d, %d commands)\n", cfg.flags, cfg.output, cfg.width, cfg.height, n)
}

// run renders the frame described by cfg to cfg.output and returns the
// number of recorded commands. Point and command listings go to out.
func run(cfg config, out io.Writer) (int, error) {
	var px, py int
	if cfg.point != "" {
		var err error
		if px, py, err = parsePoint(cfg.point); err != nil {
			return 0, fmt.Errorf("invalid -point: %w", err)
		}
	}

	theme, err := decor.NewTheme()
	if err != nil {
		return 0, fmt.Errorf("create theme: %w", err)
	}
	defer func() { _ = theme.Close() }()

	if cfg.point != "" {
		fmt.Fprintf(out, "%d,%d: %v\n", px, py, theme.Location(px, py, cfg.width, cfg.height, cfg.flags))
	}

	rec := recording.NewRecorder(cfg.width, cfg.height)
	if err := theme.RenderFrame(rec, cfg.width, cfg.height, cfg.title, cfg.flags); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	r := rec.FinishRecording()
	if cfg.commands {
		for i, c := range r.Commands() {
			fmt.Fprintf(out, "%3d %v\n", i, c.Type())
		}
	}

	pm, err := surface.NewPixmap(cfg.width, cfg.height)
	if err != nil {
		return 0, fmt.Errorf("allocate: %w", err)
	}
	if err := r.Render(pm); err != nil {
		return 0, fmt.Errorf("play back: %w", err)
	}
	if err := pm.SavePNG(cfg.output); err != nil {
		return 0, fmt.Errorf("save: %w", err)
	}
	return len(r.Commands()), nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return 0, 0, err
	}
	if y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
