package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felosidev/avatar-bot/internal/command"
	"github.com/felosidev/avatar-bot/internal/config"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestPing(t *testing.T) {
	cmd := &PingCommand{Now: clock}
	reply, err := cmd.Run(context.Background(), &command.Invocation{CreatedAt: fixedNow.Add(-137 * time.Millisecond)})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Content != "Pong! Bot's ping is 137ms" {
		t.Fatalf("reply = %q", reply.Content)
	}
}

func TestPingClampsClockSkew(t *testing.T) {
	cmd := &PingCommand{Now: clock}
	reply, _ := cmd.Run(context.Background(), &command.Invocation{CreatedAt: fixedNow.Add(time.Second)})
	if reply.Content != "Pong! Bot's ping is 0ms" {
		t.Fatalf("reply = %q", reply.Content)
	}
}

type fakeStats struct {
	stats Stats
	err   error
}

func (f fakeStats) Snapshot() (Stats, error) { return f.stats, f.err }

func fieldValue(t *testing.T, reply *command.Reply, name string) string {
	t.Helper()
	for _, f := range reply.Embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("field %q not found", name)
	return ""
}

func TestStats(t *testing.T) {
	src := fakeStats{stats: Stats{
		GuildMembers: []int{10, 25, 7},
		Channels:     12,
		Latency:      41600 * time.Microsecond,
		BotName:      "avatar",
		BotAvatarURL: "https://cdn.test/a.png",
		BotCreatedAt: time.Date(2022, 12, 11, 0, 0, 0, 0, time.UTC),
	}}
	cmd := &StatsCommand{Source: src, DeveloperName: "Felosi", DeveloperURL: "https://dev.test", Now: clock}

	reply, err := cmd.Run(context.Background(), &command.Invocation{})
	if err != nil {
		t.Fatal(err)
	}
	if reply.Embed.Title != "avatar stats" {
		t.Errorf("title = %q", reply.Embed.Title)
	}
	if reply.Embed.Thumbnail == nil || reply.Embed.Thumbnail.URL != "https://cdn.test/a.png" {
		t.Errorf("thumbnail = %+v", reply.Embed.Thumbnail)
	}
	checks := map[string]string{
		"🏘 Servers:":              "3",
		"👥 Members:":              "42",
		"🍁 Channels:":             "12",
		"⌛️ Ping:":                "42 ms",
		"🗓 Creation date:":        "Sun Dec 11 2022",
		":tools: Bot Developer:": "[Felosi](https://dev.test)",
	}
	for name, want := range checks {
		if got := fieldValue(t, reply, name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if !strings.HasPrefix(fieldValue(t, reply, "📡 Built with:"), "Go ") {
		t.Error("built with should name Go")
	}
	if reply.Embed.Timestamp != fixedNow.Format(time.RFC3339) {
		t.Errorf("timestamp = %q", reply.Embed.Timestamp)
	}
}

func TestStatsNoGuilds(t *testing.T) {
	cmd := &StatsCommand{Source: fakeStats{stats: Stats{BotName: "avatar"}}}
	reply, err := cmd.Run(context.Background(), &command.Invocation{})
	if err != nil {
		t.Fatal(err)
	}
	if got := fieldValue(t, reply, "👥 Members:"); got != "0" {
		t.Fatalf("members = %q, want 0", got)
	}
	if got := fieldValue(t, reply, "🗓 Creation date:"); got != "unknown" {
		t.Fatalf("creation date = %q, want unknown", got)
	}
}

func TestStatsErrors(t *testing.T) {
	if _, err := (&StatsCommand{}).Run(context.Background(), &command.Invocation{}); err == nil {
		t.Error("nil source should fail")
	}
	cmd := &StatsCommand{Source: fakeStats{err: errors.New("not ready")}}
	if _, err := cmd.Run(context.Background(), &command.Invocation{}); err == nil || !strings.Contains(err.Error(), "not ready") {
		t.Errorf("err = %v", err)
	}
}

func TestSumMembers(t *testing.T) {
	if SumMembers(nil) != 0 || SumMembers([]int{1, 2, 3}) != 6 {
		t.Fatal("wrong sum")
	}
}

func TestLinksHasFiveFields(t *testing.T) {
	links := config.Links{
		Invite:     "https://i.test",
		Repository: "https://r.test",
		Directory:  "https://d.test",
		Support:    "https://s.test",
		VoidBots:   "https://v.test",
		TopGG:      "https://t.test",
	}
	cmd := &LinksCommand{Links: links, DeveloperName: "Felosi", Now: clock}

	for i := 0; i < 2; i++ {
		reply, err := cmd.Run(context.Background(), &command.Invocation{})
		if err != nil {
			t.Fatal(err)
		}
		if n := len(reply.Embed.Fields); n != 5 {
			t.Fatalf("fields = %d, want 5", n)
		}
		if got := reply.Embed.Fields[4].Value; got != "[Void Bot](https://v.test)\n[Top.gg](https://t.test)" {
			t.Errorf("vote field = %q", got)
		}
		if reply.Embed.Footer == nil || reply.Embed.Footer.Text != "Bot created by Felosi" {
			t.Errorf("footer = %+v", reply.Embed.Footer)
		}
	}

	// empty config still yields five fields
	reply, err := (&LinksCommand{}).Run(context.Background(), &command.Invocation{})
	if err != nil || len(reply.Embed.Fields) != 5 {
		t.Fatalf("empty links: err = %v", err)
	}
}

func TestHelpListsStaticEntries(t *testing.T) {
	reply, err := (&HelpCommand{}).Run(context.Background(), &command.Invocation{})
	if err != nil {
		t.Fatal(err)
	}
	fields := reply.Embed.Fields
	if len(fields) != len(HelpEntries) {
		t.Fatalf("fields = %d, want %d", len(fields), len(HelpEntries))
	}
	for i, e := range HelpEntries {
		if fields[i].Name != e.Name || fields[i].Value != e.Description {
			t.Errorf("field %d = %q/%q, want %q/%q", i, fields[i].Name, fields[i].Value, e.Name, e.Description)
		}
	}
	if reply.Embed.Title != "Bot Commands" || reply.Embed.Description != "Here are the available bot commands:" {
		t.Errorf("embed = %+v", reply.Embed)
	}
}

func TestHelpTextIsVerbatim(t *testing.T) {
	want := []HelpEntry{
		{"/setprofilepic", "Set the bot's profile picture"},
		{"/ping", "Check the bot's ping"},
		{"/stats", "View bot statistics"},
		{"/links", "Send importtant links"},
	}
	reply, err := (&HelpCommand{}).Run(context.Background(), &command.Invocation{})
	if err != nil {
		t.Fatal(err)
	}
	if len(reply.Embed.Fields) != len(want) {
		t.Fatalf("fields = %d, want %d", len(reply.Embed.Fields), len(want))
	}
	for i, w := range want {
		f := reply.Embed.Fields[i]
		if f.Name != w.Name || f.Value != w.Description {
			t.Errorf("field %d = %q/%q, want %q/%q", i, f.Name, f.Value, w.Name, w.Description)
		}
	}
}

func TestStatsNegativeLatencyShowsZero(t *testing.T) {
	cmd := &StatsCommand{Source: fakeStats{stats: Stats{BotName: "avatar", Latency: -40 * time.Millisecond}}}
	reply, err := cmd.Run(context.Background(), &command.Invocation{})
	if err != nil {
		t.Fatal(err)
	}
	if got := fieldValue(t, reply, "⌛️ Ping:"); got != "0 ms" {
		t.Fatalf("ping = %q, want 0 ms", got)
	}
}
