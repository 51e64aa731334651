package cmds

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Serious-senpai/discord-pixiv-uploader/api/discord"
	"github.com/Serious-senpai/discord-pixiv-uploader/api/pixiv"
	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
	"github.com/Serious-senpai/discord-pixiv-uploader/request"
	"github.com/Serious-senpai/discord-pixiv-uploader/spinner"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

const attachmentName = "image.png"

// resolveArtworkArg accepts either an artwork page URL or a bare numeric ID.
func resolveArtworkArg(arg string) (int64, error) {
	if artworkId, ok := pixiv.ParseArtworkUrl(arg); ok {
		return artworkId, nil
	}

	artworkId, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || artworkId <= 0 {
		return 0, fmt.Errorf(
			"error %d: invalid artwork URL or ID %q",
			utils.INPUT_ERROR,
			arg,
		)
	}
	return artworkId, nil
}

// resolveUserArg accepts either a profile page URL or a bare numeric ID.
func resolveUserArg(arg string) (int64, error) {
	if userId, ok := pixiv.ParseUserUrl(arg); ok {
		return userId, nil
	}

	userId, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || userId <= 0 {
		return 0, fmt.Errorf(
			"error %d: invalid user URL or ID %q",
			utils.INPUT_ERROR,
			arg,
		)
	}
	return userId, nil
}

// sendArtwork runs the whole relay pipeline for one artwork:
// fetch, NSFW gate, image URL resolution, image download, embed
// rendering and the Discord post. Every failure is local to this
// attempt, the caller reports it and carries on.
func sendArtwork(ctx context.Context, config *configs.Config, channelId string, artworkId int64, resolver pixiv.ImageUrlResolver) error {
	progress := spinner.New(
		spinner.REQ_SPINNER,
		"yellow",
		fmt.Sprintf("Fetching artwork %d from Pixiv...", artworkId),
		"",
		"",
	)
	progress.Start()
	artwork, err := pixiv.GetArtwork(ctx, artworkId, config)
	progress.Stop(err != nil)
	if err != nil {
		return err
	}

	if artwork.Nsfw && !config.AllowNsfw {
		return &pixiv.NsfwArtworkError{Artwork: artwork}
	}

	imageUrl, err := artwork.GetImageUrl(resolver)
	if err != nil {
		return err
	}

	progress = spinner.New(
		spinner.REQ_SPINNER,
		"yellow",
		fmt.Sprintf("Downloading image for artwork %d...", artworkId),
		"",
		"",
	)
	progress.Start()
	image, err := request.DownloadImage(ctx, imageUrl, config.UserAgent, config.ApiTimeout)
	progress.Stop(err != nil)
	if err != nil {
		return err
	}

	embed := artwork.CreateEmbed(attachmentName)
	client := discord.NewClient(config)

	progress = spinner.New(
		spinner.JSON_SPINNER,
		"yellow",
		fmt.Sprintf("Sending artwork %d to channel %s...", artworkId, channelId),
		fmt.Sprintf("Sent artwork %d to channel %s!", artworkId, channelId),
		fmt.Sprintf("Failed to send artwork %d to channel %s!", artworkId, channelId),
	)
	progress.Start()
	err = client.SendImageMessage(ctx, channelId, embed, attachmentName, image)
	progress.Stop(err != nil)
	if err != nil {
		return err
	}

	utils.AlertWithoutErr(
		fmt.Sprintf("Sent artwork %d to channel %s", artworkId, channelId),
	)
	return nil
}
