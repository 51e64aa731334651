package cmds

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/browser"

	"github.com/Serious-senpai/discord-pixiv-uploader/api/pixiv"
	"github.com/Serious-senpai/discord-pixiv-uploader/configs"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

// promptImageUrl is the interactive fallback for artworks whose
// "regular" image URL is null: ask the operator for a replacement.
func promptImageUrl(reader *bufio.Reader) pixiv.ImageUrlResolver {
	return func(artwork *pixiv.Artwork) (string, error) {
		color.Yellow(
			"Cannot fetch image URL for artwork %d, please enter it manually.",
			artwork.Id,
		)
		fmt.Print("image URL>")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf(
				"error %d: failed to read image URL, more info => %v",
				utils.INPUT_ERROR,
				err,
			)
		}
		return strings.TrimSpace(line), nil
	}
}

func printHelp() {
	fmt.Println("Available commands:\n" + strings.Repeat("-", 20))
	commands := []string{
		"help",
		"quit",
		"set <channel ID>",
		"send <Pixiv URL or ID>",
		"open <Pixiv URL or ID>",
		"user <Pixiv URL or ID>",
	}
	sort.Strings(commands)
	fmt.Println(strings.Join(commands, "\n"))
}

// RunInteractive runs the read-eval-print loop until "quit" or EOF.
func RunInteractive(config *configs.Config) {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)
	resolver := promptImageUrl(reader)
	currentChannel := config.ChannelId

	for {
		fmt.Print("command>")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF, behave like "quit"
			fmt.Println()
			return
		}

		args, err := utils.SplitArgs(strings.TrimSpace(line))
		if err != nil {
			color.Red("Invalid command")
			continue
		}
		if len(args) == 0 {
			continue
		}

		command := strings.ToLower(args[0])
		arguments := args[1:]

		switch command {
		case "help":
			printHelp()

		case "quit":
			return

		case "set":
			if len(arguments) == 0 {
				color.Red("Missing argument")
				continue
			}
			currentChannel = arguments[0]
			fmt.Printf("Set target channel ID to %s\n", currentChannel)

		case "send":
			if currentChannel == "" {
				color.Red("Please set current channel first!")
				continue
			}
			if len(arguments) == 0 {
				color.Red("Missing argument")
				continue
			}

			artworkId, err := resolveArtworkArg(arguments[0])
			if err != nil {
				color.Red("Invalid URL: %s", arguments[0])
				continue
			}

			if err := sendArtwork(ctx, config, currentChannel, artworkId, resolver); err != nil {
				reportSendError(err)
			}

		case "open":
			if len(arguments) == 0 {
				color.Red("Missing argument")
				continue
			}

			artworkId, err := resolveArtworkArg(arguments[0])
			if err != nil {
				color.Red("Invalid URL: %s", arguments[0])
				continue
			}

			url := fmt.Sprintf("%s/en/artworks/%d", utils.PIXIV_URL, artworkId)
			if err := browser.OpenURL(url); err != nil {
				color.Red("Cannot open %s in browser!", url)
				utils.LogError(err, "", false)
			}

		case "user":
			if len(arguments) == 0 {
				color.Red("Missing argument")
				continue
			}

			userId, err := resolveUserArg(arguments[0])
			if err != nil {
				color.Red("Invalid URL: %s", arguments[0])
				continue
			}

			user, err := pixiv.GetUser(ctx, userId, config)
			if err != nil {
				if errors.Is(err, pixiv.ErrNotFound) {
					color.Red("Cannot find such user!")
				} else {
					color.Red(err.Error())
					utils.LogError(err, "", false)
				}
				continue
			}

			fmt.Printf("%s (%s)\n", user.Name, user.Url())
			fmt.Printf("Profile image: %s\n", user.ImageUrl)
			fmt.Printf("Accepting requests: %t\n", user.AcceptRequest)

		default:
			fmt.Printf("Unknown command: %s\n", command)
		}
	}
}

func reportSendError(err error) {
	var malformedErr *pixiv.MalformedResponseError
	var nsfwErr *pixiv.NsfwArtworkError

	switch {
	case errors.Is(err, pixiv.ErrNotFound):
		color.Red("Cannot find such artwork!")
	case errors.As(err, &nsfwErr):
		color.Red(
			"Artwork %d is NSFW! Use --allow-nsfw or set ALLOW_NSFW=true to send it anyway.",
			nsfwErr.Artwork.Id,
		)
	case errors.As(err, &malformedErr):
		color.Red("Pixiv returned an unexpected response: %v", err)
		utils.LogError(err, "", false)
	default:
		color.Red(err.Error())
		utils.LogError(err, "", false)
	}
}
