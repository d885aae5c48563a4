package finder

import "strings"

// appHints are checked in order; the first hit wins. "vscode" folds
// into "code" because the tracker records the process name Code.exe.
var appHints = []struct {
	hint  string
	label string
}{
	{"edge", "edge"},
	{"chrome", "chrome"},
	{"brave", "brave"},
	{"firefox", "firefox"},
	{"code", "code"},
	{"vscode", "code"},
	{"notepad", "notepad"},
}

// DetectApp returns the canonical label of an application mentioned in
// the query, or "" if none is mentioned.
func DetectApp(text string) string {
	query := strings.ToLower(text)
	for _, app := range appHints {
		if strings.Contains(query, app.hint) {
			return app.label
		}
	}
	return ""
}
