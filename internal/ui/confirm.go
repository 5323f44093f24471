package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDangerousOperation displays a warning box and prompts the user
// to type "I AGREE" to proceed with a dangerous operation. Returns true
// if the user confirmed, false otherwise.
func ConfirmDangerousOperation(title string, warnings []string, disclaimer string) bool {
	width := GetTerminalWidth()
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string

	titleLine := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(fmt.Sprintf("   ⚠  WARNING  ─  %s", title))
	lines = append(lines, "")
	lines = append(lines, titleLine)
	lines = append(lines, "")

	for _, warning := range warnings {
		bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	if disclaimer != "" {
		disclaimerStyle := lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			Width(width - 12).
			PaddingLeft(3)
		lines = append(lines, disclaimerStyle.Render(disclaimer))
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(content)

	fmt.Println(box)
	fmt.Println()

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Print(promptStyle.Render("To proceed, type \"I AGREE\" and press Enter: "))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}

	input = strings.TrimSpace(input)
	if input == "I AGREE" {
		fmt.Println()
		return true
	}

	fmt.Println()
	fmt.Println(MutedStyle.Render("  Operation cancelled."))
	fmt.Println()
	return false
}

// FactoryResetConfirmation is a pre-configured confirmation for the
// factory reset command
func FactoryResetConfirmation(addr string) bool {
	return ConfirmDangerousOperation(
		"FACTORY RESET",
		[]string{
			"This wipes all provisioning from the plug at " + addr,
			"The plug forgets its Wi-Fi network and cloud binding",
			"It will need to be set up again in the Kasa app",
			"Anything powered through the plug loses power during the reset",
		},
		"DISCLAIMER: A factory reset cannot be undone. Once the plug "+
			"acknowledges the command it will reset even if this tool "+
			"loses the connection afterwards.",
	)
}

// RebootConfirmation is a pre-configured confirmation for the reboot
// command
func RebootConfirmation(addr string) bool {
	return ConfirmDangerousOperation(
		"PLUG REBOOT",
		[]string{
			"The plug at " + addr + " goes offline for a few seconds",
			"The relay briefly drops power to whatever is connected",
		},
		"",
	)
}
