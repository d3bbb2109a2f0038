package pattern

// payloadSchemas defines the JSON schema for each pattern type's payload.
// Payloads are validated before persistence so template filling downstream
// can rely on their shape.
var payloadSchemas = map[Type]map[string]any{
	TypeOptimalStudyTime: {
		"type": "object",
		"properties": map[string]any{
			"windows": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"start_hour": map[string]any{"type": "integer", "minimum": 0, "maximum": 23},
						"end_hour":   map[string]any{"type": "integer", "minimum": 1, "maximum": 24},
						"score":      map[string]any{"type": "number", "minimum": 0},
					},
					"required":             []any{"start_hour", "end_hour", "score"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"windows"},
		"additionalProperties": false,
	},
	TypeOptimalDuration: {
		"type": "object",
		"properties": map[string]any{
			"recommended_minutes": map[string]any{"type": "integer", "minimum": 1},
			"duration_range":      map[string]any{"type": "string"},
			"by_complexity": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "integer"},
			},
		},
		"required":             []any{"recommended_minutes", "duration_range"},
		"additionalProperties": false,
	},
	TypeContentPreference: {
		"type": "object",
		"properties": map[string]any{
			"preferences": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			},
			"dominant_style": map[string]any{
				"type": "string",
				"enum": []any{"visual", "auditory", "reading", "kinesthetic"},
			},
			"visual":      map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"auditory":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"reading":     map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"kinesthetic": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		},
		"required":             []any{"preferences", "dominant_style", "visual", "auditory", "reading", "kinesthetic"},
		"additionalProperties": false,
	},
	TypeForgettingCurve: {
		"type": "object",
		"properties": map[string]any{
			"stability_days": map[string]any{"type": "number", "minimum": 0},
			"half_life_days": map[string]any{"type": "number", "minimum": 0},
		},
		"required":             []any{"stability_days", "half_life_days"},
		"additionalProperties": false,
	},
}
