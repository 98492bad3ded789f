package insight

import "github.com/minatgo/minatgo/internal/llm"

// Schema is the response shape requested from the model.
var Schema = &llm.Schema{
	Name:        "riasec-insight",
	Description: "A short personalised reading of a RIASEC interest profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to four sentences in Indonesian describing the profile",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to three strengths suggested by the profile",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Up to three concrete things the student can try this month",
			},
		},
		"required":             []any{"summary", "strengths", "next_steps"},
		"additionalProperties": false,
	},
}
