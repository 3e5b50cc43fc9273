package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Config is the process configuration, read from the environment.
type Config struct {
	DiscordToken string `env:"BOT_TOKEN,required,notEmpty"`

	APIBaseURL  string        `env:"DISCORD_API_BASE" envDefault:"https://discord.com/api/v9"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	ProfilePicEnabled bool `env:"PROFILEPIC_ENABLED" envDefault:"true"`
	ResetCommands     bool `env:"RESET_COMMANDS" envDefault:"true"`
	RegisterWorkers   int  `env:"REGISTER_WORKERS" envDefault:"4"`

	DeveloperName string `env:"DEVELOPER_NAME" envDefault:"Felosi"`
	DeveloperURL  string `env:"DEVELOPER_URL" envDefault:"https://discord.com/users/779716357872680970"`

	Links Links `envPrefix:"LINK_"`
}

// Links are the static URLs shown by /links.
type Links struct {
	Invite     string `env:"INVITE" envDefault:"https://discord.com/api/oauth2/authorize?client_id=1051331092990402624&permissions=8&scope=bot"`
	Repository string `env:"REPOSITORY" envDefault:"https://github.com/FelosiDev"`
	Directory  string `env:"DIRECTORY" envDefault:"https://discord.com/application-directory/1051331092990402624"`
	Support    string `env:"SUPPORT" envDefault:"https://discord.gg/JQxWGQnRCG"`
	VoidBots   string `env:"VOIDBOTS" envDefault:"https://voidbots.net/bot/1051331092990402624/"`
	TopGG      string `env:"TOPGG" envDefault:"https://top.gg/bot/1051331092990402624/"`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.RegisterWorkers <= 0 {
		cfg.RegisterWorkers = 1
	}
	return &cfg, nil
}
