package profile

import (
	"context"
	"errors"
	"log"

	"github.com/felosidev/avatar-bot/internal/avatar"
	"github.com/felosidev/avatar-bot/internal/command"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

const (
	successColor = 0x00ff00

	// maxEmbedURLLength is the longest image URL Discord accepts in an embed.
	maxEmbedURLLength = 2048
)

// AvatarUpdater changes the avatar of the account that owns token.
type AvatarUpdater interface {
	Update(ctx context.Context, token, imageURL string) (*discordgo.User, error)
}

// The token authenticates the PATCH, so the avatar changed is that of
// whichever bot the caller supplies a token for, not this bot's own.
type profileArgs struct {
	Token    string
	ImageURL string
}

type SetProfilePicCommand struct {
	Avatars       AvatarUpdater
	DeveloperName string
}

func (c *SetProfilePicCommand) Name() string        { return "setprofilepic" }
func (c *SetProfilePicCommand) Description() string { return "Set the bot's profile picture" }
func (c *SetProfilePicCommand) Category() string    { return "🖼️ Profile" }
func (c *SetProfilePicCommand) Deferred() bool      { return true }

func (c *SetProfilePicCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "token",
				Description: "Bot token",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "image_url",
				Description: "Image URL",
				Required:    true,
			},
		},
	}
}

func (c *SetProfilePicCommand) DecodeArgs(opts command.Options) (any, error) {
	token, err := opts.RequireString("token")
	if err != nil {
		return nil, err
	}
	imageURL, err := opts.RequireString("image_url")
	if err != nil {
		return nil, err
	}
	return profileArgs{Token: token, ImageURL: imageURL}, nil
}

func (c *SetProfilePicCommand) Run(ctx context.Context, inv *command.Invocation) (*command.Reply, error) {
	args, err := command.ArgsAs[profileArgs](inv)
	if err != nil {
		return nil, err
	}

	user, err := c.Avatars.Update(ctx, args.Token, args.ImageURL)
	if err != nil {
		var apiErr *avatar.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			log.Printf("[ERR] Avatar update rejected (status %d, code %d): %s", apiErr.Status, apiErr.Code, apiErr.Message)
			return command.Text("An error occurred: %s", apiErr.Message), nil
		}
		return nil, err
	}

	if user != nil && user.Username != "" {
		log.Printf("[DONE] Profile picture updated for %s (%s)", user.Username, user.ID)
	} else {
		log.Println("[DONE] Profile picture updated")
	}

	card := embed.NewEmbed().
		SetTitle("Profile Picture Updated").
		SetColor(successColor).
		SetDescription("The bot's profile picture has been successfully updated.").
		SetFooter("Made by " + c.DeveloperName)
	if len(args.ImageURL) <= maxEmbedURLLength {
		card.SetImage(args.ImageURL)
	}

	return command.Card(card.MessageEmbed), nil
}
