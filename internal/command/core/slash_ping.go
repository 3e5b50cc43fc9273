package core

import (
	"context"
	"time"

	"github.com/felosidev/avatar-bot/internal/command"

	"github.com/bwmarrin/discordgo"
)

type PingCommand struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Check the bot's ping" }
func (c *PingCommand) Category() string    { return "🛠️ Utility" }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *PingCommand) Run(ctx context.Context, inv *command.Invocation) (*command.Reply, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	elapsed := now().Sub(inv.CreatedAt).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}

	return command.Text("Pong! Bot's ping is %dms", elapsed), nil
}
