package utils

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawBanner() {
	banner := figure.NewFigure("flow-doctor", "small", true)
	fmt.Fprintln(os.Stderr, text.FgHiCyan.Sprint(banner.String()))
}
