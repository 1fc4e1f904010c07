package model

import (
	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar progressbar.ProgressBar

// NewBar draws a progress bar of len steps; Saucer color follows the side
// that is expected to fill it.
func NewBar(len int, description string, color aurora.Color) *Bar {
	saucer := aurora.Colorize("█", color).String()
	return (*Bar)(progressbar.NewOptions(len,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        saucer,
			SaucerHead:    saucer,
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *Bar) Describe(description string) {
	(*progressbar.ProgressBar)(b).Describe(description)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}
