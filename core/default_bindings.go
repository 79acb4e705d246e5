package core

import "strings"

const (
	ScopeDashboard      = "dashboard"
	ScopeProviderPicker = "screen:provider-picker"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"d"}, Action: "open-provider-picker", Description: "deploy provider", Scopes: []string{ScopeDashboard}},
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeDashboard}},
		{Keys: []string{"up", "k"}, Action: "list-up", Description: "up", Scopes: []string{ScopeProviderPicker}},
		{Keys: []string{"down", "j"}, Action: "list-down", Description: "down", Scopes: []string{ScopeProviderPicker}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeProviderPicker}},
		{Keys: []string{"tab", "shift+tab"}, Action: "focus-next", Description: "focus", Scopes: []string{ScopeProviderPicker}},
		{Keys: []string{"esc"}, Action: "close", Description: "cancel", Scopes: []string{ScopeProviderPicker}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override. Blank overrides are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys := cleanKeys(actionKeys[b.Action]); len(keys) > 0 {
			next.Keys = keys
		}
		out = append(out, next)
	}
	return out
}

func cleanKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			out = append(out, k)
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
