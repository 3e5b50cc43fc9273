package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/felosidev/avatar-bot/internal/command"
	"github.com/felosidev/avatar-bot/internal/version"
	"github.com/felosidev/avatar-bot/pkg/util"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// Stats is a point-in-time view of the connected session.
type Stats struct {
	// GuildMembers holds the member count of every cached guild.
	GuildMembers []int
	Channels     int
	Latency      time.Duration

	BotName      string
	BotAvatarURL string
	BotCreatedAt time.Time
}

// StatsSource supplies read-only session statistics.
type StatsSource interface {
	Snapshot() (Stats, error)
}

type StatsCommand struct {
	Source        StatsSource
	DeveloperName string
	DeveloperURL  string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *StatsCommand) Name() string        { return "stats" }
func (c *StatsCommand) Description() string { return "View bot statistics" }
func (c *StatsCommand) Category() string    { return "🕯️ Information" }

func (c *StatsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *StatsCommand) Run(ctx context.Context, inv *command.Invocation) (*command.Reply, error) {
	if c.Source == nil {
		return nil, errors.New("statistics are not available")
	}

	st, err := c.Source.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to read statistics: %w", err)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	latency := st.Latency
	if latency < 0 {
		latency = 0
	}

	card := embed.NewEmbed().
		SetColor(EmbedColor).
		SetTitle(fmt.Sprintf("%s stats", st.BotName)).
		AddField("🏘 Servers:", strconv.Itoa(len(st.GuildMembers))).
		AddField("👥 Members:", strconv.Itoa(SumMembers(st.GuildMembers))).
		AddField("🍁 Channels:", strconv.Itoa(st.Channels)).
		AddField("⌛️ Ping:", fmt.Sprintf("%d ms", latency.Round(time.Millisecond).Milliseconds())).
		AddField("🗓 Creation date:", orUnknown(util.FormatDateTpl(st.BotCreatedAt, "ddd MMM DD YYYY"))).
		AddField("📡 Built with:", "Go "+strings.TrimPrefix(version.GoVersion, "go")).
		AddField(":tools: Bot Developer:", fmt.Sprintf("[%s](%s)", c.DeveloperName, c.DeveloperURL))
	if st.BotAvatarURL != "" {
		card.SetThumbnail(st.BotAvatarURL)
	}
	card.Timestamp = now().Format(time.RFC3339)

	return command.Card(card.MessageEmbed), nil
}

// SumMembers adds up per-guild member counts; no guilds sums to 0.
func SumMembers(counts []int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
