package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		"DEBUG":    slog.LevelDebug,
		"info":     slog.LevelInfo,
		"Info":     slog.LevelInfo,
		"warn":     slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"ERROR":    slog.LevelError,
		"":         slog.LevelInfo,
		"verbose":  slog.LevelInfo,
		"critical": slog.LevelInfo,
	}

	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestInitLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{
		Level:   "debug",
		Format:  "json",
		Service: "koperasid",
		Output:  &buf,
	})

	logger.Info("loan approved", "loan_id", "L-1")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not a JSON line: %v (%q)", err, buf.String())
	}
	if line["msg"] != "loan approved" {
		t.Errorf("msg = %v, want %q", line["msg"], "loan approved")
	}
	if line["service"] != "koperasid" {
		t.Errorf("service = %v, want %q", line["service"], "koperasid")
	}
	if line["loan_id"] != "L-1" {
		t.Errorf("loan_id = %v, want %q", line["loan_id"], "L-1")
	}
}

func TestInitLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "warn", Format: "json", Output: &buf})

	logger.Info("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info record emitted at warn level: %q", buf.String())
	}

	logger.Warn("emitted")
	if buf.Len() == 0 {
		t.Fatal("warn record not emitted at warn level")
	}
}

func TestInitLogger_TextFormatDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "info", Format: "", Output: &buf})

	logger.Info("posting due", "member_code", "A-0042")

	out := buf.String()
	if !strings.Contains(out, "msg=\"posting due\"") {
		t.Errorf("text output missing msg attribute: %q", out)
	}
	if !strings.Contains(out, "member_code=A-0042") {
		t.Errorf("text output missing member_code attribute: %q", out)
	}
}

func TestInitLogger_SetsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Level: "info", Format: "json", Output: &buf})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("InitLogger did not install the returned logger as the default")
	}
}
