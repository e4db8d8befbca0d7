// script_test.go
//
// Whole-session golden tests driven by testdata/sessions.yaml. Each
// case runs a fresh session, feeds it lines in order, and checks either
// the combined output or the error reported by the first failing line.
package slate

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type scriptCase struct {
	Name   string   `yaml:"name"`
	Lines  []string `yaml:"lines"`
	Output string   `yaml:"output"`
	Error  string   `yaml:"error"`
}

type scriptFile struct {
	Cases []scriptCase `yaml:"cases"`
}

func loadScriptCases(t *testing.T, path string) []scriptCase {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var f scriptFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	if len(f.Cases) == 0 {
		t.Fatalf("%s holds no cases", path)
	}
	return f.Cases
}

func Test_Scripts(t *testing.T) {
	for _, tc := range loadScriptCases(t, "testdata/sessions.yaml") {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			sess := NewSession(&buf)

			var lineErr error
			for _, line := range tc.Lines {
				if lineErr = sess.EvalLine(line); lineErr != nil {
					break
				}
			}

			if tc.Error != "" {
				if lineErr == nil {
					t.Fatalf("want error containing %q, got none\noutput: %q", tc.Error, buf.String())
				}
				if !strings.Contains(lineErr.Error(), tc.Error) {
					t.Fatalf("want error containing %q, got %q", tc.Error, lineErr.Error())
				}
				return
			}

			if lineErr != nil {
				t.Fatalf("unexpected error: %v", lineErr)
			}
			if got := buf.String(); got != tc.Output {
				t.Fatalf("output mismatch\nwant: %q\ngot:  %q", tc.Output, got)
			}
		})
	}
}
