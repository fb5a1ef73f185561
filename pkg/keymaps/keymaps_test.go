package keymaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeyMapDefaults(t *testing.T) {
	km := BuildKeyMap(nil)

	assert.Equal(t, []string{"q"}, km.QuitApp.Keys())
	assert.Equal(t, []string{"space"}, km.ToggleSection.Keys())
	assert.Equal(t, []string{"enter"}, km.ShowDetail.Keys())
}

func TestBuildKeyMapOverrides(t *testing.T) {
	km := BuildKeyMap(map[string]string{
		"QuitApp":      "ctrl+q",
		"ReloadEvents": "F5, ctrl+r",
	})

	assert.Equal(t, []string{"ctrl+q"}, km.QuitApp.Keys())
	assert.Equal(t, []string{"F5", "ctrl+r"}, km.ReloadEvents.Keys())

	// Unrelated bindings keep their defaults
	assert.Equal(t, []string{"a"}, km.AddEvent.Keys())
}

func TestGetDefaultKeyMappingsCoversAllActions(t *testing.T) {
	mappings := GetDefaultKeyMappings()
	assert.Len(t, mappings, len(KeyDefinitions))
	for action, def := range KeyDefinitions {
		assert.Equal(t, def.DefaultKey, mappings[action])
	}
}
