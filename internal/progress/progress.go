package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

var bar = create(-1, "") // init as spinner

// Spinner swaps the bar for an indeterminate spinner.
func Spinner(desc string) {
	_ = bar.Clear()
	Reset(-1, desc)
	_ = bar.RenderBlank()
}

// Reset replaces the bar with a fresh one capped at max.
func Reset(max int, desc string) {
	bar = create(max, desc)
}

func Add(n int) {
	_ = bar.Add(n)
}

func Finish() {
	_ = bar.Finish()
}

func create(max int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
