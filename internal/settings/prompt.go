package settings

import (
	"strings"

	"settingsd/internal/catalog"
	"settingsd/pkg/types"
)

// EffectivePrompt returns the user-configured system prompt, or the
// built-in default when the user prompt is empty or whitespace.
func EffectivePrompt(s types.Settings) string {
	if strings.TrimSpace(s.UserSystemPrompt) != "" {
		return s.UserSystemPrompt
	}
	return catalog.DefaultSystemPrompt
}
