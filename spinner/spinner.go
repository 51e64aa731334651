package spinner

import (
	"fmt"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/Serious-senpai/discord-pixiv-uploader/utils"
)

var colourMap = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

type Spinner struct {
	Spinner SpinnerInfo

	Colour     *color.Color
	Msg        string
	SuccessMsg string
	ErrMsg     string

	active bool
	mu     sync.Mutex
	stop   chan struct{}
	done   sync.WaitGroup
}

func New(spinnerType, colour, message, successMsg, errMsg string) *Spinner {
	spinnerInfo, ok := spinnerTypes[spinnerType]
	if !ok {
		panic(
			fmt.Errorf(
				"error %d: spinner type %s not found",
				utils.DEV_ERROR,
				spinnerType,
			),
		)
	}

	colourAttribute, ok := colourMap[colour]
	if !ok {
		panic(
			fmt.Errorf(
				"error %d: colour %s not found",
				utils.DEV_ERROR,
				colour,
			),
		)
	}

	return &Spinner{
		Spinner:    spinnerInfo,
		Colour:     color.New(colourAttribute),
		Msg:        message,
		SuccessMsg: successMsg,
		ErrMsg:     errMsg,
	}
}

// Starts the spinner
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	s.active = true
	s.stop = make(chan struct{})
	s.done.Add(1)

	go func() {
		defer s.done.Done()
		for {
			for _, frame := range s.Spinner.Frames {
				select {
				case <-s.stop:
					return
				default:
					s.Colour.Printf("\r%s %s", frame, s.Msg)
					time.Sleep(s.Spinner.Interval)
				}
			}
		}
	}()
}

// Stop stops the spinner and prints an outcome message
func (s *Spinner) Stop(hasErr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}

	s.active = false
	close(s.stop)
	s.done.Wait()

	fmt.Print("\r\033[K") // clear the spinner line
	if hasErr {
		if s.ErrMsg != "" {
			color.Red(s.ErrMsg)
		}
	} else if s.SuccessMsg != "" {
		color.Green(s.SuccessMsg)
	}
}
