package discord

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/felosidev/avatar-bot/internal/avatar"
	"github.com/felosidev/avatar-bot/internal/command"
	"github.com/felosidev/avatar-bot/internal/command/core"
	"github.com/felosidev/avatar-bot/internal/command/profile"
	"github.com/felosidev/avatar-bot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// Bot is a Discord bot
type Bot struct {
	dg           *discordgo.Session
	cfg          *config.Config
	registry     *command.Registry
	dispatcher   *command.Dispatcher
	registrar    *Registrar
	registerOnce sync.Once

	ctx          context.Context
	newResponder func(s *discordgo.Session, i *discordgo.Interaction) command.Responder
}

// NewBot creates the session and the command set. It does not connect.
func NewBot(cfg *config.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	registry := NewRegistry(cfg, sessionStats{s: dg}, avatar.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout))

	return &Bot{
		dg:           dg,
		cfg:          cfg,
		registry:     registry,
		dispatcher:   command.NewDispatcher(registry),
		registrar:    NewRegistrar(dg, cfg.RegisterWorkers, cfg.ResetCommands),
		ctx:          context.Background(),
		newResponder: newInteractionResponder,
	}, nil
}

// NewRegistry builds the bot's command set in declaration order.
func NewRegistry(cfg *config.Config, stats core.StatsSource, avatars profile.AvatarUpdater) *command.Registry {
	mws := []command.Middleware{
		command.WithRecover(),
		command.WithCommandLogger(),
	}

	reg := command.NewRegistry()
	if cfg.ProfilePicEnabled {
		reg.Register(&profile.SetProfilePicCommand{Avatars: avatars, DeveloperName: cfg.DeveloperName}, mws...)
	}
	reg.Register(&core.PingCommand{}, mws...)
	reg.Register(&core.StatsCommand{Source: stats, DeveloperName: cfg.DeveloperName, DeveloperURL: cfg.DeveloperURL}, mws...)
	reg.Register(&core.LinksCommand{Links: cfg.Links, DeveloperName: cfg.DeveloperName}, mws...)
	reg.Register(&core.HelpCommand{}, mws...)
	return reg
}

// Run connects to the gateway and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	b.configureIntents()
	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onInteractionCreate)

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds
}

// onReady is called when the bot is ready. Commands are registered on the
// first ready only; later ones follow a reconnect.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Discord bot %v is ready.", r.User.Username)

	b.registerOnce.Do(func() {
		appID := r.User.ID
		if r.Application != nil && r.Application.ID != "" {
			appID = r.Application.ID
		}
		b.registrar.Register(b.ctx, appID, b.registry.Definitions())
	})
}

// onInteractionCreate is called when an interaction is created
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handleInteraction(b.ctx, i.Interaction, b.newResponder(s, i.Interaction))
}

// handleInteraction dispatches application commands and ignores everything
// else. It reports whether the interaction was dispatched.
func (b *Bot) handleInteraction(ctx context.Context, i *discordgo.Interaction, r command.Responder) bool {
	inv, ok := newInvocation(i)
	if !ok {
		return false
	}

	if err := b.dispatcher.Dispatch(ctx, inv, r); err != nil {
		log.Println("[ERR] Error running slash command:", err)
	}
	return true
}

// newInvocation converts an application command interaction. Any other
// interaction type yields false.
func newInvocation(i *discordgo.Interaction) (*command.Invocation, bool) {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return nil, false
	}
	data, ok := i.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok {
		return nil, false
	}

	created, err := discordgo.SnowflakeTimestamp(i.ID)
	if err != nil {
		created = time.Now()
	}

	inv := &command.Invocation{
		Name:      data.Name,
		Options:   command.OptionsFrom(data.Options),
		CreatedAt: created,
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
	}
	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}
	if user != nil {
		inv.UserID = user.ID
		inv.Username = user.Username
	}
	return inv, true
}
