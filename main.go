package main

import (
	"github.com/Serious-senpai/discord-pixiv-uploader/cmds"
	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

func main() {
	if err := cmds.RootCmd.Execute(); err != nil {
		utils.LogError(err, "", true)
	}
}
