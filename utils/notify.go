package utils

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

const NOTIFY_TITLE = "Discord Pixiv Uploader"

// Alert shows a notification on the user's system with the given message.
func Alert(message string) error {
	if err := beeep.Notify(NOTIFY_TITLE, message, ""); err != nil {
		return fmt.Errorf(
			"error %d: unable to show notification => %v",
			UNEXPECTED_ERROR,
			err,
		)
	}
	return nil
}

// AlertWithoutErr is the same as Alert but
// if an error occurs, it will log it instead of returning it.
func AlertWithoutErr(message string) {
	if err := Alert(message); err != nil {
		LogError(err, "", false)
	}
}
