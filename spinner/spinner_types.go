package spinner

import "time"

const (
	REQ_SPINNER  = "aesthetic"
	JSON_SPINNER = "material"
)

type SpinnerInfo struct {
	Interval time.Duration
	Frames   []string
}

var spinnerTypes = map[string]SpinnerInfo{
	"aesthetic": {
		Interval: 80 * time.Millisecond,
		Frames: []string{
			"▰▱▱▱▱▱▱",
			"▰▰▱▱▱▱▱",
			"▰▰▰▱▱▱▱",
			"▰▰▰▰▱▱▱",
			"▰▰▰▰▰▱▱",
			"▰▰▰▰▰▰▱",
			"▰▰▰▰▰▰▰",
			"▰▱▱▱▱▱▱",
		},
	},
	"material": {
		Interval: 120 * time.Millisecond,
		Frames: []string{
			"▁", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃",
		},
	},
}
