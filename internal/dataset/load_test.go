package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCSV writes content to a temporary CSV file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads required columns", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "Test,Time_ns\nHeap,100\nHeap,300\nKernel,50\nKernel,150\n")

		ds, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ds.Len() != 4 {
			t.Fatalf("expected 4 rows, got %d", ds.Len())
		}
		if ds.Rows[0].Test != "Heap" || ds.Rows[0].TimeNs != 100 {
			t.Errorf("unexpected first row: %+v", ds.Rows[0])
		}
		if ds.HasSegFaulted {
			t.Error("expected HasSegFaulted to be false")
		}
	})

	t.Run("loads harness output with extra columns", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "Trial,Test,Time_ns,SegFaulted\n1,Heap,48211,1\n1,Kernel,1733,0\n")

		ds, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ds.HasSegFaulted {
			t.Fatal("expected HasSegFaulted to be true")
		}
		if !ds.Rows[0].SegFaulted {
			t.Error("expected first row to be marked as crashed")
		}
		if ds.Rows[1].SegFaulted {
			t.Error("expected second row not to be marked as crashed")
		}
		if ds.Rows[1].TimeNs != 1733 {
			t.Errorf("expected 1733, got %v", ds.Rows[1].TimeNs)
		}
	})

	t.Run("accepts floating point times", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "Test,Time_ns\nHeap,12.5\nHeap,1e3\n")

		ds, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ds.Rows[0].TimeNs != 12.5 || ds.Rows[1].TimeNs != 1000 {
			t.Errorf("unexpected values: %+v", ds.Rows)
		}
	})

	t.Run("empty time cell becomes NaN", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "Test,Time_ns\nHeap,\n")

		ds, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsNaN(ds.Rows[0].TimeNs) {
			t.Errorf("expected NaN, got %v", ds.Rows[0].TimeNs)
		}
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "Test,Time_ns\n")

		ds, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ds.IsEmpty() {
			t.Errorf("expected empty dataset, got %d rows", ds.Len())
		}
	})

	t.Run("keeps trailing blanks in test names", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "Test,Time_ns\n  Heap ,1\nHeap,3\n")

		ds, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ds.Rows[0].Test != "Heap " {
			t.Errorf("expected %q, got %q", "Heap ", ds.Rows[0].Test)
		}
		if ds.Rows[1].Test != "Heap" {
			t.Errorf("expected %q, got %q", "Heap", ds.Rows[1].Test)
		}
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		t.Parallel()

		path := writeCSV(t, "\ufeffTest,Time_ns\nHeap,1\n")

		ds, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ds.Len() != 1 {
			t.Errorf("expected 1 row, got %d", ds.Len())
		}
	})

	t.Run("missing file returns ErrInputNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
		if !errors.Is(err, ErrInputNotFound) {
			t.Errorf("expected ErrInputNotFound, got %v", err)
		}
	})
}

func TestLoadReaderMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "empty input",
			input:   "",
			wantMsg: "missing header row",
		},
		{
			name:    "missing Time_ns column",
			input:   "Test,Elapsed\nHeap,1\n",
			wantMsg: `missing column "Time_ns"`,
		},
		{
			name:    "missing Test column",
			input:   "Name,Time_ns\nHeap,1\n",
			wantMsg: `missing column "Test"`,
		},
		{
			name:    "column names are case sensitive",
			input:   "test,time_ns\nHeap,1\n",
			wantMsg: `missing column "Test"`,
		},
		{
			name:    "non numeric time",
			input:   "Test,Time_ns\nHeap,fast\n",
			wantMsg: "line 2",
		},
		{
			name:    "empty test value",
			input:   "Test,Time_ns\n,10\n",
			wantMsg: "empty Test value",
		},
		{
			name:    "wrong number of fields",
			input:   "Test,Time_ns\nHeap,1,extra\n",
			wantMsg: "wrong number of fields",
		},
		{
			name:    "invalid segfault flag",
			input:   "Test,Time_ns,SegFaulted\nHeap,1,maybe\n",
			wantMsg: "invalid SegFaulted value",
		},
		{
			name:    "unterminated quote",
			input:   "Test,Time_ns\n\"Heap,1\n",
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadReader(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInputMalformed) {
				t.Fatalf("expected ErrInputMalformed, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error to contain %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
