package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, "info", "JSON")
	logger.Info("converted", "input", "18TWL8566411315")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %q", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["msg"] != "converted" || rec["input"] != "18TWL8566411315" || rec["level"] != "INFO" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestSetupDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, "", "")
	logger.Info("hidden")
	logger.Warn("bad line", "line", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at the default level: %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "line=3") {
		t.Errorf("expected a text warning, got %q", out)
	}
}
