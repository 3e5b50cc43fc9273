package discord

import (
	"context"

	"github.com/felosidev/avatar-bot/internal/command"

	"github.com/bwmarrin/discordgo"
)

// interactionResponder answers one interaction through the session. After
// Defer, Send edits the deferred response instead of creating a new one.
type interactionResponder struct {
	s        *discordgo.Session
	i        *discordgo.Interaction
	deferred bool
}

func newInteractionResponder(s *discordgo.Session, i *discordgo.Interaction) command.Responder {
	return &interactionResponder{s: s, i: i}
}

func (r *interactionResponder) Defer(ctx context.Context) error {
	err := r.s.InteractionRespond(r.i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}, discordgo.WithContext(ctx))
	if err == nil {
		r.deferred = true
	}
	return err
}

func (r *interactionResponder) Send(ctx context.Context, reply *command.Reply) error {
	if r.deferred {
		_, err := r.s.InteractionResponseEdit(r.i, webhookEdit(reply), discordgo.WithContext(ctx))
		return err
	}
	return r.s.InteractionRespond(r.i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: responseData(reply),
	}, discordgo.WithContext(ctx))
}

func responseData(reply *command.Reply) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{Content: reply.Content}
	if reply.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	}
	return data
}

func webhookEdit(reply *command.Reply) *discordgo.WebhookEdit {
	edit := &discordgo.WebhookEdit{}
	if reply.Content != "" {
		content := reply.Content
		edit.Content = &content
	}
	if reply.Embed != nil {
		embeds := []*discordgo.MessageEmbed{reply.Embed}
		edit.Embeds = &embeds
	}
	return edit
}
