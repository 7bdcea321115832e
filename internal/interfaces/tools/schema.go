package tools

// JSON Schema builders for tool parameter descriptions.

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringParam(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func numberParam(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func integerParam(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func boolParam(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

func arrayParam(itemType, description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": itemType},
		"description": description,
	}
}
