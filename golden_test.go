package commentify_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/commentify"
	"pkt.systems/commentify/internal/golden"
)

func TestGoldenFiles(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.golden"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no golden files under testdata")
	}
	for _, path := range paths {
		name := filepath.Base(path)
		t.Run(strings.TrimSuffix(name, ".golden"), func(t *testing.T) {
			base, cfg, ok := golden.Parse(name)
			if !ok {
				t.Fatalf("cannot parse golden name %q", name)
			}
			src, err := os.ReadFile(filepath.Join("testdata", base+".txt"))
			if err != nil {
				t.Fatalf("read source: %v", err)
			}
			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read golden: %v", err)
			}
			got, err := commentify.Transform(string(src), cfg)
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			if got != string(want) {
				t.Fatalf("output differs from %s\nwant: %q\n got: %q", name, want, got)
			}
		})
	}
}

func TestGoldenFilesCoverMatrix(t *testing.T) {
	sources, err := filepath.Glob(filepath.Join("testdata", "*.txt"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	for _, src := range sources {
		base := strings.TrimSuffix(filepath.Base(src), ".txt")
		for _, cfg := range golden.Configs() {
			path := filepath.Join("testdata", golden.Name(base, cfg))
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("missing golden %s (run go run ./cmd/gen-golden): %v", path, err)
			}
		}
	}
}
