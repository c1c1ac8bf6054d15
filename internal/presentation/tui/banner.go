package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for interactive sessions.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String("     _                                    _      _      ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  __| | _ __   __ _ __      __  ___    __| |  __| | ___ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" / _` || '__| / _` |\\ \\ /\\ / / / _ \\  / _` | / _` |/ __|").Foreground(p.Color("#c084fc"))
	s4 := termenv.String("| (_| || |   | (_| | \\ V  V / | (_) || (_| || (_| |\\__ \\").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" \\__,_||_|    \\__,_|  \\_/\\_/   \\___/  \\__,_| \\__,_||___/").Foreground(p.Color("#f472b6"))
	v := termenv.String(fmt.Sprintf("  exact draw odds v%s", version)).Faint()

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(v)
	fmt.Println()
}
