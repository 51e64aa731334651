package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

var (
	channelId string
	allowNsfw bool
	RootCmd   = &cobra.Command{
		Use: "discord-pixiv-uploader",
		Version: fmt.Sprintf(
			"%s by Serious-senpai\n%s",
			utils.VERSION,
			"GitHub Repo: https://github.com/Serious-senpai/discord-pixiv-uploader",
		),
		Short: "Forward Pixiv artworks to a Discord channel.",
		Long:  "Interactive command-line tool that fetches a Pixiv artwork, renders it into a rich embed and posts it with its image to a Discord channel.",
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfig()
			if err := config.PromptToken(); err != nil {
				utils.LogError(err, "", true)
			}
			RunInteractive(config)
		},
	}
)

func loadConfig() *configs.Config {
	config, err := configs.LoadConfig()
	if err != nil {
		utils.LogError(err, "", true)
	}

	if channelId != "" {
		config.ChannelId = channelId
	}
	if allowNsfw {
		config.AllowNsfw = true
	}
	return config
}

func init() {
	RootCmd.PersistentFlags().StringVarP(
		&channelId,
		"channel",
		"c",
		"",
		"ID of the target Discord channel (overrides CHANNEL_ID).",
	)
	RootCmd.PersistentFlags().BoolVar(
		&allowNsfw,
		"allow-nsfw",
		false,
		"Allow forwarding artworks marked as NSFW (overrides ALLOW_NSFW).",
	)
	RootCmd.AddCommand(sendCmd)
}
