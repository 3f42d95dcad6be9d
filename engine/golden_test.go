package engine

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/tools/txtar"

	"github.com/npillmayer/nebula/runtime"
)

// Golden tests live in testdata/*.txtar. Every archive holds a section
// 'input' and either a section 'error' or sections 'reduced', 'resolved'
// and 'register'. An optional section 'mode' selects the entry point.
func TestGolden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.engine")
	defer teardown()
	//
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(archives) == 0 {
		t.Fatal("no golden files found in testdata")
	}
	for _, path := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			a, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatal(err)
			}
			sections := make(map[string]string)
			for _, f := range a.Files {
				sections[f.Name] = strings.TrimSpace(string(f.Data))
			}
			mode := ModeDerive
			if m, ok := sections["mode"]; ok {
				if mode, err = ParseMode(m); err != nil {
					t.Fatal(err)
				}
			}
			v, reg, err := Interpret(sections["input"], mode)
			if want, ok := sections["error"]; ok {
				if err == nil {
					t.Fatalf("expected error %q, got value %v", want, v)
				}
				if got := err.Error(); got != want {
					t.Errorf("error mismatch:\n got: %s\nwant: %s", got, want)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := map[string]string{
				"reduced":  v.String(),
				"resolved": Resolve(reg, v).String(),
				"register": dumpRegister(reg),
			}
			want := map[string]string{
				"reduced":  sections["reduced"],
				"resolved": sections["resolved"],
				"register": sections["register"],
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s: mismatch (-want +got):\n%s", a.Comment, diff)
			}
		})
	}
}

func dumpRegister(reg *runtime.Register[Value]) string {
	var lines []string
	reg.Each(func(e runtime.Entry[Value]) {
		lines = append(lines, fmt.Sprintf("%s = %v", e.Key(), e.Value))
	})
	return strings.Join(lines, "\n")
}

