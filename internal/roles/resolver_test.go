package roles

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Iron-Ham/adversarial-critique/internal/logging"
)

func TestResolver_Resolve(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriterLogger(&buf, logging.LevelDebug)
	r := NewResolver(MapLookup(map[string]string{EnvStrategist: "GEMINI"}), logger)

	a, origin, err := r.Resolve(fakeSource{available: []string{"claude", "gemini", "codex"}})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if origin != OriginEnv {
		t.Errorf("origin = %q, want %q", origin, OriginEnv)
	}
	if a.Strategist != "gemini" || a.Judge != "gemini" {
		t.Errorf("Resolve() = %+v", a)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log entry is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "roles assigned" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["component"] != "roles" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["origin"] != "env" {
		t.Errorf("origin = %v", entry["origin"])
	}
}

func TestResolver_ResolveFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(nil, logging.NewWriterLogger(&buf, logging.LevelDebug))

	_, origin, err := r.Resolve(fakeSource{available: []string{"gemini"}})
	if !errors.Is(err, ErrStrategistUnavailable) {
		t.Fatalf("Resolve() error = %v, want ErrStrategistUnavailable", err)
	}
	if origin != OriginDefault {
		t.Errorf("origin = %q, want %q", origin, OriginDefault)
	}
	if !strings.Contains(buf.String(), "role assignment failed") {
		t.Errorf("expected failure in log, got %q", buf.String())
	}
}

func TestResolver_NilLogger(t *testing.T) {
	r := NewResolver(nil, nil)
	if _, _, err := r.Resolve(fakeSource{available: []string{"claude", "codex"}}); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
}

func TestResolver_Pair(t *testing.T) {
	r := NewResolver(nil, nil)

	a, pair, err := r.Pair(fakeSource{available: []string{"claude", "codex", "gemini"}})
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	if pair != [2]string{"codex", "gemini"} {
		t.Errorf("pair = %v, want [codex gemini]", pair)
	}
	if a.Strategist != "claude" {
		t.Errorf("Strategist = %q", a.Strategist)
	}

	a, _, err = r.Pair(fakeSource{available: []string{"claude", "codex"}})
	if !errors.Is(err, ErrInsufficientCritics) {
		t.Fatalf("Pair() error = %v, want ErrInsufficientCritics", err)
	}
	if a.Strategist != "claude" {
		t.Error("Pair() should still return the assignment when only the pair is missing")
	}
}
