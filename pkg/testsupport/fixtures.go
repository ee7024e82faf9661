package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// UpdateGoldensEnv rewrites golden files instead of comparing when set.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// AssertGolden compares got with the golden file at path byte for byte.
// With UPDATE_GOLDENS set the file is rewritten and the check passes.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()

	if os.Getenv(UpdateGoldensEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(want) != got {
		t.Fatalf("golden %s mismatch\nwant: %q\n got: %q", filepath.Base(path), want, got)
	}
}

// CaptureTemplateOutput runs a render function that both returns and writes
// its output, failing the test on error.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
