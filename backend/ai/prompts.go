package ai

import (
	"fmt"

	"google.golang.org/genai"
)

func roadmapPrompt(topic, details string) string {
	return "Hey Chat, I want you to act like a professional mentor and generate a structured 6-month (24-week) learning roadmap for me.\n" +
		"Goal: I want to learn [SUBJECT/GOAL] in 6 months (24 weeks).\n" +
		"Guidelines:\n" +
		"Split the 6 months into 24 weeks.\n" +
		"For each week, provide a list of actionable to-dos only (not grouped by \"read/watch/practice\").\n" +
		"For each todo, return JSON objects with fields: 'description' (plain text without any quadrant tags) and 'quadrant' (one of Q1, Q2, Q3, Q4).\n" +
		"Distribute quadrants fairly (don't dump everything into Q1).\n" +
		"Quadrant meanings: Q1 Urgent+Important, Q2 NotUrgent+Important, Q3 Urgent+NotImportant, Q4 NotUrgent+NotImportant.\n" +
		"Assume ~3 hours/day of effort, and Sundays are rest days.\n" +
		"At the end of each week, add a Weekly Review Task (quiz, reflection, or mini-project), also tagged with its quadrant.\n" +
		"By Week 24, I should demonstrate competence through a capstone project (likely Q1).\n" +
		"Additionally, for each week include an array 'videos' containing 2-4 curated YouTube URLs that best support that week's theme.\n" +
		"Return a strict JSON object matching the provided schema.\n" +
		fmt.Sprintf("Subject/goal: %s. Additional details: %s", topic, details)
}

func quizPrompt(topic, difficulty, planContext string, weekStart, weekEnd int) string {
	return fmt.Sprintf("Create a short quiz with exactly 5 real-world multiple-choice questions on '%s' at %s difficulty.\n", topic, difficulty) +
		fmt.Sprintf("Focus ONLY on material from weeks %d to %d in the plan summary below.\n", weekStart, weekEnd) +
		"Each question must have EXACTLY 4 options (A-D) and provide 'correct_answer' as a 0-based index.\n" +
		"Do not include more than 4 options. Do not include explanations in the JSON.\n" +
		"Plan context (condensed):\n" + planContext + "\n\n" +
		"After generating the JSON for questions, also provide a short bullet list (outside JSON) of 3-5 highly relevant YouTube video URLs that match the same scope, so the app can surface them in the player."
}

func videoSummaryPrompt(title, description string) string {
	return "Provide a concise summary of this YouTube video.\n" +
		fmt.Sprintf("Title: %s\n", title) +
		fmt.Sprintf("Description: %s", description)
}

func answerPrompt(question, context string) string {
	return "Based on this context, answer the user's question.\n" +
		fmt.Sprintf("Context: %s\n", context) +
		fmt.Sprintf("Question: %s", question)
}

// roadmapSchema declares the structured output for roadmap generation:
// {weeks: [{week, theme, tasks: [{description, quadrant}], videos: []}]}.
var roadmapSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"weeks": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"week":  {Type: genai.TypeInteger},
					"theme": {Type: genai.TypeString},
					"tasks": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"description": {Type: genai.TypeString},
								"quadrant":    {Type: genai.TypeString},
							},
							Required: []string{"description"},
						},
					},
					"videos": {
						Type:     genai.TypeArray,
						Items:    &genai.Schema{Type: genai.TypeString},
						MaxItems: genai.Ptr[int64](4),
					},
				},
				Required: []string{"week", "theme", "tasks"},
			},
		},
	},
	Required: []string{"weeks"},
}

// quizSchema declares the structured output for quiz generation:
// {questions: [{question, options[4], correct_answer}]}.
var quizSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question": {Type: genai.TypeString},
					"options": {
						Type:     genai.TypeArray,
						Items:    &genai.Schema{Type: genai.TypeString},
						MinItems: genai.Ptr[int64](4),
						MaxItems: genai.Ptr[int64](4),
					},
					"correct_answer": {Type: genai.TypeInteger},
				},
				Required: []string{"question", "options", "correct_answer"},
			},
		},
	},
	Required: []string{"questions"},
}
