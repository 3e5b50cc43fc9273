package command

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Command is what every slash command implements. Run returns the reply to
// send; the dispatcher owns delivery so a command can never answer twice.
type Command interface {
	Name() string
	Description() string
	Category() string
	Run(ctx context.Context, inv *Invocation) (*Reply, error)
}

// Providers - how a command is declared to Discord and how its input is read.

type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// ArgsDecoder turns raw options into the command's typed argument struct.
// The dispatcher calls it once, before Run, and stores the result in
// Invocation.Args.
type ArgsDecoder interface {
	DecodeArgs(opts Options) (any, error)
}

// Deferrer marks commands that do slow work before replying. The dispatcher
// acknowledges them first and delivers the reply as an edit.
type Deferrer interface {
	Deferred() bool
}

// Invocation is a single command interaction as seen by a command.
type Invocation struct {
	Name      string
	Options   Options
	Args      any
	CreatedAt time.Time

	GuildID   string
	ChannelID string
	UserID    string
	Username  string
}

// ArgsAs returns the decoded arguments of inv as T.
func ArgsAs[T any](inv *Invocation) (T, error) {
	args, ok := inv.Args.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected arguments type %T", inv.Args)
	}
	return args, nil
}

// MaxContentLength is Discord's limit on message content, in characters.
const MaxContentLength = 2000

// Reply is either plain text or a single embed card.
type Reply struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

// Text builds a plain text reply, cut to MaxContentLength.
func Text(format string, args ...any) *Reply {
	return &Reply{Content: truncate(fmt.Sprintf(format, args...), MaxContentLength)}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// Card builds an embed reply.
func Card(embed *discordgo.MessageEmbed) *Reply {
	return &Reply{Embed: embed}
}

// ErrorReply is the text sent when a command fails.
func ErrorReply(name string, err error) *Reply {
	return Text("An error occurred while handling %s command: %v", name, err)
}
