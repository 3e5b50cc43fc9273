package command

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestCommandLoggerRecordsWhereCommandRan(t *testing.T) {
	buf := captureLog(t)
	inv := &Invocation{Name: "a", GuildID: "g1", ChannelID: "c9", UserID: "u1", Username: "alice"}

	ok := Apply(&stubCommand{name: "a", reply: Text("x")}, WithCommandLogger())
	if _, err := ok.Run(context.Background(), inv); err != nil {
		t.Fatal(err)
	}
	failing := Apply(&stubCommand{name: "b", err: errors.New("boom")}, WithCommandLogger())
	if _, err := failing.Run(context.Background(), inv); err == nil {
		t.Fatal("expected error to pass through")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("log lines = %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `[INFO] /a by alice (u1) in guild "g1" channel "c9"`) {
		t.Errorf("success line = %q", lines[0])
	}
	if !strings.Contains(lines[1], `[ERR] /b`) || !strings.Contains(lines[1], `channel "c9"`) || !strings.Contains(lines[1], "boom") {
		t.Errorf("failure line = %q", lines[1])
	}
}
