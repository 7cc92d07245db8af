package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", "JSON", &buf)

	Log.WithField("frame", 3).Debug("tick")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "tick" {
		t.Errorf("Expected msg 'tick', got %v", entry["msg"])
	}
	if entry["frame"] != float64(3) {
		t.Errorf("Expected frame 3, got %v", entry["frame"])
	}
}

func TestConfigureLevelFallback(t *testing.T) {
	var buf bytes.Buffer

	Configure("", "text", &buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level by default, got %s", Log.GetLevel())
	}

	Configure("loud", "text", &buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level for unknown name, got %s", Log.GetLevel())
	}

	Configure("warn", "text", &buf)
	Log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}
}
