package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":          {"ctrl+b", "show/hide commands"},
	"QuitApp":           {"q", "quit"},
	"ReloadEvents":      {"r", "reload events"},
	"AddEvent":          {"a", "add event"},
	"EditEvent":         {"e", "edit event"},
	"DeleteEvent":       {"d", "delete event"},
	"SearchEvents":      {"ctrl+f", "search events"},
	"CycleStatusFilter": {"f", "cycle status filter (all/active/ended)"},
	"ToggleSection":     {"space", "open/close the date section"},
	"ShowDetail":        {"enter", "show event detail"},
	"ShowReviews":       {"v", "show all reviews"},
	"ShowStats":         {"s", "show statistics"},
}

type KeyMap struct {
	ShowHelp          key.Binding
	QuitApp           key.Binding
	ReloadEvents      key.Binding
	AddEvent          key.Binding
	EditEvent         key.Binding
	DeleteEvent       key.Binding
	SearchEvents      key.Binding
	CycleStatusFilter key.Binding
	ToggleSection     key.Binding
	ShowDetail        key.Binding
	ShowReviews       key.Binding
	ShowStats         key.Binding
}

// BuildKeyMap builds the key bindings, applying any overrides from the
// config file on top of the defaults.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ReloadEvents":
			km.ReloadEvents = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddEvent":
			km.AddEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditEvent":
			km.EditEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteEvent":
			km.DeleteEvent = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SearchEvents":
			km.SearchEvents = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CycleStatusFilter":
			km.CycleStatusFilter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleSection":
			km.ToggleSection = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowDetail":
			km.ShowDetail = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowReviews":
			km.ShowReviews = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowStats":
			km.ShowStats = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
