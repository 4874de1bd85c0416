package types

import "strings"

// Signature identifies an editor by fragments of its process name and window title.
// Both fragments must appear, case-insensitively, for a window to match.
type Signature struct {
	NameFragment  string `json:"nameFragment"`
	TitleFragment string `json:"titleFragment"`
}

// DefaultSignatures matches Visual Studio and Visual Studio Code
func DefaultSignatures() []Signature {
	return []Signature{
		{NameFragment: "devenv", TitleFragment: "microsoft visual studio"},
		{NameFragment: "code", TitleFragment: "visual studio code"},
	}
}

// Matches reports whether name and title both contain the signature's fragments.
// This is a substring test, so "code" also matches e.g. "vscode-insiders".
func (s Signature) Matches(name, title string) bool {
	if title == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(s.NameFragment)) &&
		strings.Contains(strings.ToLower(title), strings.ToLower(s.TitleFragment))
}

// MatchesAny reports whether any signature matches the process
func MatchesAny(signatures []Signature, p ProcessInfo) bool {
	for _, s := range signatures {
		if s.Matches(p.Name, p.WindowTitle) {
			return true
		}
	}
	return false
}
