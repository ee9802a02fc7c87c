package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var l Logger = Wrap(zap.New(core))

	l.Debugf("debug %d", 1)
	l.Info("info")
	l.Warningf("warning %s", "message")
	l.Warningln("warning", "line")
	l.Errorln("error", "line")

	expected := []struct {
		level   zapcore.Level
		message string
	}{
		{zapcore.DebugLevel, "debug 1"},
		{zapcore.InfoLevel, "info"},
		{zapcore.WarnLevel, "warning message"},
		{zapcore.WarnLevel, "warning line"},
		{zapcore.ErrorLevel, "error line"},
	}

	entries := logs.AllUntimed()
	if len(entries) != len(expected) {
		t.Fatalf("expected %d log entries, actual %d", len(expected), len(entries))
	}
	for i, e := range expected {
		if entries[i].Level != e.level || entries[i].Message != e.message {
			t.Errorf("expected entry %d to be %v '%s', actual %v '%s'", i, e.level, e.message, entries[i].Level, entries[i].Message)
		}
	}
}

func TestWith(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := Wrap(zap.New(core)).With("key", "fingerprint")
	l.Info("message")

	entries := logs.FilterField(zap.String("key", "fingerprint")).All()
	if len(entries) != 1 {
		t.Errorf("expected the field to be attached to the entry, actual entries %v", logs.All())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("discarded")
	if err := l.Close(); err != nil {
		t.Errorf("No error was expected, but received '%v'", err)
	}
}
