package discord

import (
	"context"
	"errors"
	"log"

	"github.com/felosidev/avatar-bot/pkg/ratelimit"
	"github.com/felosidev/avatar-bot/pkg/util"

	"github.com/bwmarrin/discordgo"
)

// CommandAPI is the part of the Discord REST API the registrar needs.
type CommandAPI interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// RegistrationReport describes one registration pass.
type RegistrationReport struct {
	Deleted    []string
	Failed     map[string]error
	Registered []string
	ListErr    error
	PutErr     error
}

// Registrar replaces the bot's global commands with a fixed set.
type Registrar struct {
	api     CommandAPI
	limiter *ratelimit.AdaptiveLimiter
	workers int
	reset   bool
}

// NewRegistrar returns a registrar that deletes existing global commands
// with up to workers concurrent calls (when reset is set) before the bulk
// overwrite.
func NewRegistrar(api CommandAPI, workers int, reset bool) *Registrar {
	return &Registrar{
		api:     api,
		limiter: ratelimit.NewAdaptiveLimiter(5, 1, 40, 1, 0.5),
		workers: workers,
		reset:   reset,
	}
}

// Register deletes every global command and then declares defs. Nothing is
// retried; every failure is logged and recorded in the report.
func (r *Registrar) Register(ctx context.Context, appID string, defs []*discordgo.ApplicationCommand) RegistrationReport {
	report := RegistrationReport{Failed: make(map[string]error)}

	if r.reset {
		r.deleteAll(ctx, appID, &report)
	}

	created, err := r.api.ApplicationCommandBulkOverwrite(appID, "", defs, discordgo.WithContext(ctx))
	if err != nil {
		report.PutErr = err
		log.Println("[ERR] Error registering global slash commands:", err)
		return report
	}
	for _, c := range created {
		report.Registered = append(report.Registered, c.Name)
	}
	log.Printf("[DONE] Registered %d global slash commands", len(report.Registered))
	return report
}

func (r *Registrar) deleteAll(ctx context.Context, appID string, report *RegistrationReport) {
	existing, err := r.api.ApplicationCommands(appID, "", discordgo.WithContext(ctx))
	if err != nil {
		report.ListErr = err
		log.Println("[ERR] Error listing global slash commands:", err)
		return
	}
	if len(existing) == 0 {
		return
	}

	results := util.ParallelCollect(ctx, existing, r.workers, func(ctx context.Context, cmd *discordgo.ApplicationCommand) error {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
		err := httpError(r.api.ApplicationCommandDelete(appID, "", cmd.ID, discordgo.WithContext(ctx)))
		r.limiter.Observe(err)
		return err
	})

	for _, res := range util.Failed(results) {
		report.Failed[res.Input.Name] = res.Err
		log.Printf("[ERR] Failed to delete command %s: %v", res.Input.Name, res.Err)
	}
	for _, res := range results {
		if res.Err == nil {
			report.Deleted = append(report.Deleted, res.Input.Name)
		}
	}
	log.Printf("[INFO] Deleted %d of %d existing global slash commands", len(report.Deleted), len(existing))
}

// restStatusError exposes the HTTP status of a discordgo REST error.
type restStatusError struct {
	*discordgo.RESTError
}

func (e restStatusError) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

func (e restStatusError) Unwrap() error { return e.RESTError }

func httpError(err error) error {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) {
		return restStatusError{rest}
	}
	return err
}
