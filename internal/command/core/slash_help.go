package core

import (
	"context"

	"github.com/felosidev/avatar-bot/internal/command"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// HelpEntry is one line of the help card.
type HelpEntry struct {
	Name        string
	Description string
}

// HelpEntries is the fixed list shown by /help. It does not list /help.
var HelpEntries = []HelpEntry{
	{Name: "/setprofilepic", Description: "Set the bot's profile picture"},
	{Name: "/ping", Description: "Check the bot's ping"},
	{Name: "/stats", Description: "View bot statistics"},
	{Name: "/links", Description: "Send importtant links"},
}

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Display bot commands and usage" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx context.Context, inv *command.Invocation) (*command.Reply, error) {
	card := embed.NewEmbed().
		SetTitle("Bot Commands").
		SetColor(EmbedColor).
		SetDescription("Here are the available bot commands:")
	for _, e := range HelpEntries {
		card.AddField(e.Name, e.Description)
	}

	return command.Card(card.MessageEmbed), nil
}
