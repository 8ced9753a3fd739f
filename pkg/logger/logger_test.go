package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"defaults", "", "", logrus.InfoLevel, false},
		{"debug text", "debug", "text", logrus.DebugLevel, false},
		{"warn json", "warn", "JSON", logrus.WarnLevel, true},
		{"garbage level", "loud", "json", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Configure(tt.level, tt.format)
			if Log.GetLevel() != tt.wantLevel {
				t.Errorf("level = %v, want %v", Log.GetLevel(), tt.wantLevel)
			}
			_, isJSON := Log.Formatter.(*logrus.JSONFormatter)
			if isJSON != tt.wantJSON {
				t.Errorf("json formatter = %v, want %v", isJSON, tt.wantJSON)
			}
		})
	}
}

func TestComponentField(t *testing.T) {
	Configure("info", "text")
	entry := Component("pathfinding")
	if entry.Data["component"] != "pathfinding" {
		t.Errorf("component field = %v", entry.Data["component"])
	}
}
