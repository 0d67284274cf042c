package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/palette"
	"github.com/san-kum/orrery/internal/render"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/storage"
)

var errNoData = errors.New("run has no recorded frames")

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tSEED\tFRAMES\tFPS\tSCREEN\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f\t%.0fx%.0f\t%s\n",
			r.ID, r.Preset, r.Seed, r.Frames, r.FPS, r.Width, r.Height,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// loadRun reads a run's metadata and positions.
func loadRun(runID string) (*storage.RunMetadata, *storage.Recording, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	rec, err := st.LoadRecording(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(rec.States) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", runID, errNoData)
	}
	return meta, rec, nil
}

func bodyTrace(rec *storage.Recording, name string) ([]analysis.Point, error) {
	xs, okX := rec.Column(name + ".x")
	ys, okY := rec.Column(name + ".y")
	if !okX || !okY {
		return nil, fmt.Errorf("no body %q in recording (have %s)", name, strings.Join(rec.Names, ", "))
	}
	return analysis.Trace(xs, ys), nil
}

// distances is each point's distance from (cx, cy).
func distances(pts []analysis.Point, cx, cy float64) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = math.Hypot(p.X-cx, p.Y-cy)
	}
	return out
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	bodies, _ := cmd.Flags().GetStringSlice("bodies")

	fmt.Printf("run: %s (%d frames)\n\n", meta.ID, meta.Frames)
	for _, name := range bodies {
		pts, err := bodyTrace(rec, name)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(distances(pts, meta.Width/2, meta.Height/2),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" distance from the sun"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	focus, _ := cmd.Flags().GetString("body")

	fmt.Printf("orbital periods: %s\n\n", meta.ID)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tFFT (frames)\tCROSSINGS (frames)\tSECONDS")
	for _, name := range rec.Names {
		xs, _ := rec.Column(name + ".x")
		fftPeriod := analysis.DominantPeriod(xs)
		crossPeriod := analysis.CrossingPeriod(xs)
		if fftPeriod == 0 && crossPeriod == 0 {
			fmt.Fprintf(w, "%s\t-\t-\t-\n", name)
			continue
		}
		secs := "-"
		if meta.FPS > 0 && crossPeriod > 0 {
			secs = fmt.Sprintf("%.2f", crossPeriod/meta.FPS)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%s\n", name, fftPeriod, crossPeriod, secs)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	xs, ok := rec.Column(focus + ".x")
	if !ok {
		return nil
	}
	n := analysis.PowerOfTwo(len(xs))
	if n < 64 {
		return nil
	}
	ps := analysis.PowerSpectrum(xs[:n])
	fmt.Println()
	fmt.Println(asciigraph.Plot(ps[1:len(ps)/8],
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum ("+focus+".x)"),
	))
	return nil
}

func traceRun(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	pts, err := bodyTrace(rec, args[1])
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("svg"); path != "" {
		doc := export.TrajectoryToSVG(pts, 800, 800, palette.For(args[1]).Hex())
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	}

	cols, _ := cmd.Flags().GetInt("cols")
	rows, _ := cmd.Flags().GetInt("rows")
	center := analysis.Point{X: meta.Width / 2, Y: meta.Height / 2}
	fmt.Printf("%s over %d frames (+ marks the sun)\n", args[1], meta.Frames)
	fmt.Print(analysis.TraceToASCII(pts, &center, cols, rows))
	return nil
}

// outputFor opens args[1] for writing, or stdout when absent.
func outputFor(args []string) (io.WriteCloser, error) {
	if len(args) < 2 {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(args[1])
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportCSV(cmd *cobra.Command, args []string) error {
	_, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	out, err := outputFor(args)
	if err != nil {
		return err
	}
	defer out.Close()

	states := make([]sim.State, len(rec.States))
	for i, row := range rec.States {
		states[i] = row
	}
	return storage.WriteCSV(out, rec.Names, rec.Times, states)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, rec, err := loadRun(args[0])
	if err != nil {
		return err
	}
	out, err := outputFor(args)
	if err != nil {
		return err
	}
	defer out.Close()
	return storage.ExportJSON(out, meta, rec)
}

func snapshot(cmd *cobra.Command, args []string) error {
	_, s, err := newScene(cmd)
	if err != nil {
		return err
	}
	frame, _ := cmd.Flags().GetInt("frame")
	noOrbits, _ := cmd.Flags().GetBool("no-orbits")
	for i := 0; i < frame; i++ {
		s.Tick()
	}
	snap := s.Snapshot()

	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		opts := render.DefaultOptions()
		opts.Orbits = !noOrbits
		if err := render.SavePNG(path, snap, opts); err != nil {
			return err
		}
	case ".svg":
		if err := os.WriteFile(path, []byte(export.SnapshotToSVG(snap, !noOrbits)), 0644); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output %q: want .png or .svg", path)
	}
	log.Info(cmd.Context(), "snapshot written", "path", path, "frame", snap.Frame)
	fmt.Printf("wrote %s (frame %d)\n", path, snap.Frame)
	return nil
}
