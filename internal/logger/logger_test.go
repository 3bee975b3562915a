package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_QuietIsNop(t *testing.T) {
	l, err := New(false)
	if err != nil {
		t.Fatal(err)
	}
	if l.SugaredLogger.Desugar().Core().Enabled(zap.ErrorLevel) {
		t.Error("quiet logger should not enable any level")
	}
}

func TestNew_Verbose(t *testing.T) {
	l, err := New(true)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Sync()
	if !l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Error("verbose logger should enable debug")
	}
}

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("command", "title").Info("title composed", "length", 25)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["command"] != "title" {
		t.Errorf("command field: got %v", ctx["command"])
	}
	if ctx["length"] != int64(25) {
		t.Errorf("length field: got %v (%T)", ctx["length"], ctx["length"])
	}
	if entries[0].Message != "title composed" {
		t.Errorf("message: got %q", entries[0].Message)
	}
}
