package save

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	first := Score{Date: time.Date(2024, 3, 7, 18, 30, 5, 0, time.UTC), Points: 12}
	second := Score{Date: time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC), Points: 40}

	if err := Append(path, first); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := Append(path, second); err != nil {
		t.Fatalf("Append: %v", err)
	}

	scores, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	if !scores[0].Date.Equal(first.Date) || scores[0].Points != 12 {
		t.Fatalf("scores[0] = %+v, want %+v", scores[0], first)
	}
	if !scores[1].Date.Equal(second.Date) || scores[1].Points != 40 {
		t.Fatalf("scores[1] = %+v, want %+v", scores[1], second)
	}
}

func TestLoadMissingFile(t *testing.T) {
	scores, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("got %d scores from a missing file, want 0", len(scores))
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.csv")
	body := "07/03/2024 18:30:05,12\n" +
		"not a date,30\n" +
		"08/03/2024 09:00:00,not a number\n" +
		"just-one-field\n" +
		"09/03/2024 10:00:00,7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	scores, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2 valid rows", len(scores))
	}
	if scores[0].Points != 12 || scores[1].Points != 7 {
		t.Fatalf("points = %d, %d, want 12, 7", scores[0].Points, scores[1].Points)
	}
}
