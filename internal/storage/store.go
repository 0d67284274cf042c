package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/orrery/internal/sim"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunInfo describes how a recording was produced.
type RunInfo struct {
	Preset string
	Seed   int64
	FPS    float64
	Width  float64
	Height float64
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	FPS       float64            `json:"fps"`
	Frames    int                `json:"frames"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Bodies    []string           `json:"bodies"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Recording is a states.csv file read back: one row per frame, x then y for
// every body in Names.
type Recording struct {
	Names  []string
	Times  []float64
	States [][]float64
}

// Column returns the series for "<body>.x" or "<body>.y".
func (r *Recording) Column(name string) ([]float64, bool) {
	for i, n := range r.Names {
		var idx int
		switch name {
		case n + ".x":
			idx = 2 * i
		case n + ".y":
			idx = 2*i + 1
		default:
			continue
		}
		out := make([]float64, len(r.States))
		for j, row := range r.States {
			if idx < len(row) {
				out[j] = row[idx]
			}
		}
		return out, true
	}
	return nil, false
}

func (s *Store) Save(info RunInfo, result *sim.Result) (string, error) {
	prefix := info.Preset
	if prefix == "" {
		prefix = "run"
	}
	now := time.Now()
	runID, runDir, err := s.reserve(fmt.Sprintf("%s_%d", prefix, now.Unix()))
	if err != nil {
		return "", err
	}

	frames := len(result.Times) - 1
	if frames < 0 {
		frames = 0
	}
	meta := RunMetadata{
		ID:        runID,
		Preset:    info.Preset,
		Timestamp: now,
		Seed:      info.Seed,
		FPS:       info.FPS,
		Frames:    frames,
		Width:     info.Width,
		Height:    info.Height,
		Bodies:    result.Names,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result.Names, result.Times, result.States); err != nil {
		return "", err
	}
	return runID, nil
}

// reserve creates a fresh run directory, suffixing id when it is taken.
func (s *Store) reserve(id string) (string, string, error) {
	candidate := id
	for i := 1; ; i++ {
		dir := filepath.Join(s.baseDir, candidate)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return candidate, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		candidate = fmt.Sprintf("%s_%d", id, i)
	}
}

// WriteCSV writes the time column followed by x, y per body.
func WriteCSV(out io.Writer, names []string, times []float64, states []sim.State) error {
	w := csv.NewWriter(out)

	header := []string{"time"}
	for _, n := range names {
		header = append(header, n+".x", n+".y")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s metadata: %w", runID, err)
	}
	return &meta, nil
}

// CSVPath is where a run's states live on disk.
func (s *Store) CSVPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "states.csv")
}

func (s *Store) LoadRecording(runID string) (*Recording, error) {
	file, err := os.Open(s.CSVPath(runID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rec := &Recording{Times: []float64{}, States: [][]float64{}}
	if len(records) == 0 {
		return rec, nil
	}

	for _, h := range records[0][1:] {
		if name, ok := strings.CutSuffix(h, ".x"); ok {
			rec.Names = append(rec.Names, name)
		}
	}

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		rec.Times = append(rec.Times, t)

		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			state = append(state, val)
		}
		rec.States = append(rec.States, state)
	}

	return rec, nil
}
