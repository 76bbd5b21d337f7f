package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchRecord is one match in a series, tagged with the agents that
// played it.
type MatchRecord struct {
	ID    int
	Black string // agent descriptor
	White string // agent descriptor
	MatchMetric
}

// TurnRecord is one turn of one match in a series.
type TurnRecord struct {
	Match int // MatchRecord.ID
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subdirectory under dir to hold one
// series' CSV files.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "black", "white", "starting_player", "decided", "start_time", "end_time", "duration", "total_turns"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Black,
			record.White,
			record.StartingPlayer.String(),
			strconv.FormatBool(record.Decided),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	path := filepath.Join(w.baseDir, "turn_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turn records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "turn", "player", "legal_actions", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write turn records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Match),
			strconv.Itoa(record.Turn),
			record.Player.String(),
			strconv.Itoa(record.LegalActions),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write turn record row: %w", err)
		}
	}

	return nil
}
