package app

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
)

type recordingLogger struct {
	warns int
}

func (l *recordingLogger) Infof(context.Context, string, ...any)  {}
func (l *recordingLogger) Warnf(context.Context, string, ...any)  { l.warns++ }
func (l *recordingLogger) Errorf(context.Context, string, ...any) {}

func TestApplyGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	cases := []struct {
		in        string
		want      string
		wantWarns int
	}{
		{"release", gin.ReleaseMode, 0},
		{"RELEASE", gin.ReleaseMode, 0},
		{"test", gin.TestMode, 0},
		{"debug", gin.DebugMode, 0},
		{"", gin.DebugMode, 0},
		{"  release  ", gin.ReleaseMode, 0},
		{"bogus", gin.DebugMode, 1},
	}

	for _, tc := range cases {
		log := &recordingLogger{}
		applyGinMode(context.Background(), tc.in, log)
		if gin.Mode() != tc.want {
			t.Fatalf("mode %q: want %s, got %s", tc.in, tc.want, gin.Mode())
		}
		if log.warns != tc.wantWarns {
			t.Fatalf("mode %q: want %d warns, got %d", tc.in, tc.wantWarns, log.warns)
		}
	}
}
