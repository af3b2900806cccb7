package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("test")

	SetLevel(Warning)
	logger.Info("hidden message")
	logger.Warning("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatalf("expected info message to be filtered at warning level; got %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Fatalf("expected warning message in output; got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Fatalf("expected module name in output; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("frame %d", 42)
	if !strings.Contains(buf.String(), "frame 42") {
		t.Fatalf("expected debug message at debug level; got %q", buf.String())
	}
	SetLevel(Notice)
}

func TestModuleLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(Notice)

	SetLevel(Warning)
	if err := SetModuleLevels("gpu=debug, codec = info"); err != nil {
		t.Fatalf("expected module levels to parse; got %v", err)
	}
	defer SetModuleLevel(Notice, "gpu")
	defer SetModuleLevel(Notice, "codec")

	specs := []struct {
		module  string
		message string
		log     func(Logger, string)
		exp     bool
	}{
		{"gpu", "gpu debug", func(l Logger, m string) { l.Debug(m) }, true},
		{"codec", "codec debug", func(l Logger, m string) { l.Debug(m) }, false},
		{"codec", "codec info", func(l Logger, m string) { l.Info(m) }, true},
		{"other", "other info", func(l Logger, m string) { l.Info(m) }, false},
		{"other", "other warning", func(l Logger, m string) { l.Warning(m) }, true},
	}

	for index, s := range specs {
		buf.Reset()
		s.log(New(s.module), s.message)
		if got := strings.Contains(buf.String(), s.message); got != s.exp {
			t.Fatalf("[spec %d] expected %q logged to be %t; got %q", index, s.message, s.exp, buf.String())
		}
	}

	// levels survive a sink change
	var other bytes.Buffer
	SetSink(&other)
	New("gpu").Debug("after sink change")
	if !strings.Contains(other.String(), "after sink change") {
		t.Fatalf("expected module level to survive SetSink; got %q", other.String())
	}
}

func TestSetModuleLevelsErrors(t *testing.T) {
	specs := []string{"renderer", "=debug", "renderer=loud"}
	for index, list := range specs {
		if err := SetModuleLevels(list); err == nil {
			t.Fatalf("[spec %d] expected an error for %q", index, list)
		}
	}
}
