package command

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestRegistryKeepsOrderAndUnwraps(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubCommand{name: "b"}, WithRecover())
	reg.Register(&stubCommand{name: "a"}, WithCommandLogger())
	reg.Register(&stubCommand{name: "b"}) // replace, keep position

	defs := reg.Definitions()
	if len(defs) != 2 || defs[0].Name != "b" || defs[1].Name != "a" {
		t.Fatalf("definitions = %+v", defs)
	}
	for _, d := range defs {
		if d.Type != discordgo.ChatApplicationCommand {
			t.Errorf("%s type = %v, want chat command", d.Name, d.Type)
		}
	}

	cmd, ok := reg.Get("a")
	if !ok {
		t.Fatal("a not found")
	}
	if _, wrapped := cmd.(Unwrappable); !wrapped {
		t.Fatal("expected middleware wrapper")
	}
	if _, ok := Root(cmd).(*stubCommand); !ok {
		t.Fatalf("Root = %T", Root(cmd))
	}
	if cmd.Name() != "a" || cmd.Description() != "stub a" {
		t.Fatalf("wrapper must delegate identity, got %q/%q", cmd.Name(), cmd.Description())
	}
}

func TestOptions(t *testing.T) {
	opts := OptionsFrom([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "s", Type: discordgo.ApplicationCommandOptionString, Value: "v"},
		{Name: "empty", Type: discordgo.ApplicationCommandOptionString, Value: ""},
		{Name: "n", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		nil,
	})

	if v, ok := opts.String("s"); !ok || v != "v" {
		t.Errorf("String(s) = %q, %v", v, ok)
	}
	if _, ok := opts.String("n"); ok {
		t.Error("integer option must not read as string")
	}
	if _, err := opts.RequireString("empty"); err == nil {
		t.Error("empty required string should fail")
	}
	if _, err := opts.RequireString("missing"); err == nil {
		t.Error("missing required string should fail")
	}
}
