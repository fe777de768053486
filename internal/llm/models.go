package llm

// Friendly model names accepted in configuration, per provider. Users
// say "claude-haiku" or "gemini-flash"; the provider constructors
// resolve those to concrete model IDs. OpenRouter has no map: its
// model slugs are always used verbatim.
var (
	anthropicModels = map[string]string{
		"claude-sonnet": "claude-sonnet-4-20250514",
		"claude-haiku":  "claude-haiku-4-5-20251001",
	}

	openaiModels = map[string]string{
		"gpt-4o":      "gpt-4o",
		"gpt-4o-mini": "gpt-4o-mini",
	}

	geminiModels = map[string]string{
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.0-pro",
	}
)

// resolveModel maps a friendly model name to a provider model ID.
// Names not in the map pass through unchanged so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
