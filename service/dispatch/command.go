package dispatch

import "strings"

const cmdStart = "/start"
const cmdSeries = "/series"

// command normalizes "/START@my_bot deeplink" into "/start".
// Returns empty string when the text is not a command.
func command(text string) (cmd string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}
	cmd = strings.ToLower(fields[0])
	if !strings.HasPrefix(cmd, "/") {
		return ""
	}
	cmd, _, _ = strings.Cut(cmd, "@")
	return
}
