package ui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pterm/pterm"
)

const bannerText = `
     ██╗ ██████╗ ██████╗ ██╗     ███████╗███╗   ██╗███████╗
     ██║██╔═══██╗██╔══██╗██║     ██╔════╝████╗  ██║██╔════╝
     ██║██║   ██║██████╔╝██║     █████╗  ██╔██╗ ██║███████╗
██   ██║██║   ██║██╔══██╗██║     ██╔══╝  ██║╚██╗██║╚════██║
╚█████╔╝╚██████╔╝██████╔╝███████╗███████╗██║ ╚████║███████║
 ╚════╝  ╚═════╝ ╚═════╝ ╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝
`

// ColorizeText applies a random color fade to the input text.
func ColorizeText(text string) string {
	startColor := pterm.NewRGB(uint8(rand.Intn(256)), uint8(rand.Intn(256)), uint8(rand.Intn(256)))
	endColor := pterm.NewRGB(uint8(rand.Intn(256)), uint8(rand.Intn(256)), uint8(rand.Intn(256)))

	strs := strings.Split(text, "")

	var coloredText string
	for i := 0; i < len(strs); i++ {
		coloredText += startColor.Fade(0, float32(len(strs)), float32(i), endColor).Sprint(strs[i])
	}

	return coloredText
}

// PrintBanner displays the application banner.
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}
