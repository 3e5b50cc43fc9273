package core

import (
	"context"
	"fmt"
	"time"

	"github.com/felosidev/avatar-bot/internal/command"
	"github.com/felosidev/avatar-bot/internal/config"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

type LinksCommand struct {
	Links         config.Links
	DeveloperName string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *LinksCommand) Name() string        { return "links" }
func (c *LinksCommand) Description() string { return "Send important links" }
func (c *LinksCommand) Category() string    { return "🕯️ Information" }

func (c *LinksCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *LinksCommand) Run(ctx context.Context, inv *command.Invocation) (*command.Reply, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	card := embed.NewEmbed().
		SetTitle("Important Links:").
		SetColor(EmbedColor).
		AddField("🎋 Invite to a Discord server", fmt.Sprintf("[Invite bot here](%s)", c.Links.Invite)).
		AddField("🔗 GitHub", fmt.Sprintf("[Click here](%s)", c.Links.Repository)).
		AddField("🌐 App Directory", fmt.Sprintf("[Click here](%s)", c.Links.Directory)).
		AddField("📮 Support Server", fmt.Sprintf("[Click here](%s)", c.Links.Support)).
		AddField("🎊 Vote", fmt.Sprintf("[Void Bot](%s)\n[Top.gg](%s)", c.Links.VoidBots, c.Links.TopGG)).
		SetFooter("Bot created by " + c.DeveloperName)
	card.Timestamp = now().Format(time.RFC3339)

	return command.Card(card.MessageEmbed), nil
}
