package cmds

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

var sendCmd = &cobra.Command{
	Use:   "send <Pixiv URL or ID>",
	Short: "Send a single artwork and exit",
	Long: utils.CombineStringsWithNewline(
		[]string{
			"Fetch one Pixiv artwork and post it to the target channel without entering the interactive session.",
			"Unlike the interactive \"send\" command, a missing image URL fails immediately instead of prompting.",
		},
	),
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := loadConfig()
		if config.Token == "" {
			utils.LogError(
				nil,
				fmt.Sprintf("error %d: TOKEN is not set", utils.INPUT_ERROR),
				true,
			)
		}
		if config.ChannelId == "" {
			utils.LogError(
				nil,
				fmt.Sprintf(
					"error %d: no target channel, use --channel or set CHANNEL_ID",
					utils.INPUT_ERROR,
				),
				true,
			)
		}

		artworkId, err := resolveArtworkArg(args[0])
		if err != nil {
			utils.LogError(err, "", true)
		}

		// nil resolver: non-interactive runs must not block on stdin
		if err := sendArtwork(context.Background(), config, config.ChannelId, artworkId, nil); err != nil {
			reportSendError(err)
		}
	},
}
