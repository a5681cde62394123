package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// ConfirmCreate asks the user whether a missing path should be created. It
// blocks on stdin with no timeout; in non-interactive sessions it declines
// without prompting so batch runs never hang.
func ConfirmCreate(path string) bool {
	if !Interactive(os.Stdout) {
		return false
	}

	fmt.Printf("%s %s does not exist.\n", pterm.Warning.Prefix.Text, pterm.Warning.MessageStyle.Sprint(path))
	fmt.Print("Create it now? [y/N]: ")

	var response string
	_, err := fmt.Scanln(&response)
	if err != nil && err.Error() != "unexpected newline" {
		return false
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// RenderError formats an error for console display using pterm's error style
func RenderError(err error) string {
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}
