package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestScriptFixtures runs every .scm fixture in script mode and snapshots
// its stdout with go-snaps. Fixtures are whole programs with a main
// function, mirroring how the CLI executes files.
func TestScriptFixtures(t *testing.T) {
	pattern := filepath.Join("testdata", "fixtures", "*.scm")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("globbing fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("no fixtures found under %s", pattern)
	}
	sort.Strings(files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".scm")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("reading fixture: %v", err)
			}

			var out bytes.Buffer
			cfg := DefaultConfig()
			cfg.Input = strings.NewReader("")
			cfg.Output = &out
			it := New(cfg)

			if err := it.RunProgram(string(source)); err != nil {
				t.Fatalf("running %s: %v", file, err)
			}
			if !it.HasMain() {
				t.Fatalf("fixture %s must define a main function", file)
			}
			if err := it.CallMain(); err != nil {
				t.Fatalf("main in %s: %v", file, err)
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
