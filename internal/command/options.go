package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Options indexes the options of one interaction by name.
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// OptionsFrom indexes top-level interaction options.
func OptionsFrom(opts []*discordgo.ApplicationCommandInteractionDataOption) Options {
	out := make(Options, len(opts))
	for _, o := range opts {
		if o != nil {
			out[o.Name] = o
		}
	}
	return out
}

// String returns a string option and whether it was supplied.
func (o Options) String(name string) (string, bool) {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return "", false
	}
	v, ok := opt.Value.(string)
	return v, ok
}

// RequireString returns a non-empty string option or an error naming it.
func (o Options) RequireString(name string) (string, error) {
	v, ok := o.String(name)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required option %q", name)
	}
	return v, nil
}
