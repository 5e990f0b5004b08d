// Package save persists finished-game scores to a CSV file.
package save

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

const dateLayout = "02/01/2006 15:04:05"

// Score is one finished game's result.
type Score struct {
	Date   time.Time
	Points int
}

// Append adds a score to the save file at path, creating the file if
// needed.
func Append(path string, s Score) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open save file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{s.Date.Format(dateLayout), strconv.Itoa(s.Points)}); err != nil {
		f.Close()
		return fmt.Errorf("write save file: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write save file: %w", err)
	}
	return f.Close()
}

// Load reads all scores from the save file at path. Malformed rows are
// skipped; old or hand-edited files degrade instead of blocking a game
// from starting. A missing file is an empty history, not an error.
func Load(path string) ([]Score, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}

	var scores []Score
	for _, rec := range records {
		if len(rec) != 2 {
			continue
		}
		date, err := time.Parse(dateLayout, rec[0])
		if err != nil {
			continue
		}
		points, err := strconv.Atoi(rec[1])
		if err != nil {
			continue
		}
		scores = append(scores, Score{Date: date, Points: points})
	}
	return scores, nil
}
