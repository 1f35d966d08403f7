package rubric

import "selectra/internal/model"

// DefaultQuestions returns the built-in interview question bank. Keyword
// sets are part of the rubric: they define what the accuracy scorer
// considers on-topic for each question.
func DefaultQuestions() []model.QuestionSpec {
	return []model.QuestionSpec{
		{
			ID:       1,
			Text:     "Tell us about yourself and your most relevant experience for this role.",
			Category: "Introduction",
			Keywords: []string{
				"experience", "skills", "projects", "team", "work", "developed",
				"built", "managed", "led", "design", "engineering", "technology",
				"software", "programming", "role", "company", "university", "degree",
			},
		},
		{
			ID:       2,
			Text:     "Describe a challenging technical problem you faced and how you solved it.",
			Category: "Problem Solving",
			Keywords: []string{
				"problem", "solution", "debug", "fix", "analyze", "approach",
				"algorithm", "optimize", "issue", "resolved", "implemented",
				"strategy", "code", "tested", "performance", "architecture",
				"system", "logic",
			},
		},
		{
			ID:       3,
			Text:     "What do you understand about data structures and when would you use a hash map vs an array?",
			Category: "Technical Knowledge",
			Keywords: []string{
				"data structure", "hash", "map", "array", "lookup",
				"time complexity", "O(1)", "O(n)", "key", "value", "index",
				"search", "insert", "collision", "list", "memory",
				"performance", "access",
			},
		},
		{
			ID:       4,
			Text:     "How do you approach working in a team? Can you give an example of a team collaboration?",
			Category: "Teamwork",
			Keywords: []string{
				"team", "collaborate", "communication", "agile", "scrum",
				"feedback", "conflict", "resolution", "together", "shared",
				"responsibility", "deadline", "meeting", "review",
				"code review", "pair", "support",
			},
		},
		{
			ID:       5,
			Text:     "Where do you see yourself in 3 years, and how does this role align with your goals?",
			Category: "Career Goals",
			Keywords: []string{
				"goal", "growth", "learn", "career", "leadership", "impact",
				"skill", "advance", "contribute", "develop", "mentor",
				"specialize", "expertise", "passion", "opportunity",
				"industry", "vision",
			},
		},
	}
}
