package tutor

import "github.com/shikshamitra/shikshamitra/internal/llm"

var problemsSchema = &llm.Schema{
	Name:        "practice-problems",
	Description: "A set of practice problems with answers and hints",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"problems"},
		"properties": map[string]any{
			"problems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question", "answer", "hint"},
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The problem statement",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer with a short working",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A hint that does not give the answer away",
						},
					},
				},
			},
		},
	},
}

var assessmentSchema = &llm.Schema{
	Name:        "answer-assessment",
	Description: "Grading of a student's answer to one problem",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"score", "feedback"},
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"description": "Correctness and understanding on a 0-10 scale",
			},
			"understood": map[string]any{
				"type":        "string",
				"description": "What the student got right",
			},
			"needs_work": map[string]any{
				"type":        "string",
				"description": "What needs improvement",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Encouraging feedback in simple words",
			},
			"next_step": map[string]any{
				"type":        "string",
				"description": "Recommended next step for the student",
			},
		},
	},
}
