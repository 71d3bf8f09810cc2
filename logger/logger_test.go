package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
)

func TestInitLog(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "sub", "linkedlist.log")
	if err := InitLog(filePath, "debug"); err != nil {
		t.Fatal(err)
	}
	defer InitConsoleLog("info")

	logging.MustGetLogger("logger_test").Info("hello")
	if _, err := os.Stat(filePath); err != nil {
		t.Errorf("log link %s should exist: %v", filePath, err)
	}
	if level := logging.GetLevel(""); level != logging.DEBUG {
		t.Errorf("Expected DEBUG found %s", level)
	}
}

func TestInvalidLevel(t *testing.T) {
	for _, level := range []string{"verbose", "", "inf"} {
		if err := InitConsoleLog(level); err == nil {
			t.Errorf("level %q should be rejected", level)
		}
	}
}

func TestPrefixLogger(t *testing.T) {
	if err := InitConsoleLog("debug"); err != nil {
		t.Fatal(err)
	}
	l, err := GetPrefixLogger("logger_test", "[test]")
	if err != nil {
		t.Fatal(err)
	}
	l.Debugf("value %d", 1)
	l.Warning("warn")
}
