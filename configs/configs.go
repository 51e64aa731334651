package configs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// Config holds everything a fetch or send operation needs.
//
// It is passed explicitly to the Pixiv and Discord clients instead of
// living in process-wide state so that tests can point the base URLs
// at fake servers.
type Config struct {
	// Token is the Discord bot token used in the Authorization header
	Token string `env:"TOKEN"`

	// ChannelId is the default target channel, changeable at runtime
	// with the "set" command
	ChannelId string `env:"CHANNEL_ID"`

	// PixivUrl is the base URL of the Pixiv ajax API
	PixivUrl string `env:"PIXIV_URL" envDefault:"https://www.pixiv.net"`

	// DiscordApiUrl is the base URL of the Discord HTTP API
	DiscordApiUrl string `env:"DISCORD_API_URL" envDefault:"https://discord.com/api/v10"`

	// UserAgent overrides the default user agent of outgoing requests
	UserAgent string `env:"USER_AGENT"`

	// ApiTimeout is the per-request timeout in seconds
	ApiTimeout int `env:"API_TIMEOUT" envDefault:"15"`

	// AllowNsfw permits sending artworks with a nonzero xRestrict flag
	AllowNsfw bool `env:"ALLOW_NSFW" envDefault:"false"`
}

// LoadConfig reads the configuration from the environment,
// loading a .env file first if one exists.
func LoadConfig() (*Config, error) {
	// missing .env is fine, the environment may already be populated
	godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf(
			"error %d: failed to parse environment variables, more info => %v",
			utils.UNEXPECTED_ERROR,
			err,
		)
	}

	if config.UserAgent == "" {
		config.UserAgent = utils.USER_AGENT
	}
	return config, nil
}

// PromptToken asks for the bot token on stdin when TOKEN is not set.
//
// Only the interactive session calls this, the one-shot send command
// fails instead of prompting.
func (c *Config) PromptToken() error {
	if c.Token != "" {
		return nil
	}

	fmt.Print("Enter bot token>")
	reader := bufio.NewReader(os.Stdin)
	token, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf(
			"error %d: failed to read bot token, more info => %v",
			utils.INPUT_ERROR,
			err,
		)
	}

	c.Token = strings.TrimSpace(token)
	return nil
}
