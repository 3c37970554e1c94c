// Package ai wraps the Gemini API behind a small generator interface so the
// pipelines receive an injected collaborator instead of a process global.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"goalpad/backend/models"

	"google.golang.org/genai"
)

// Generator produces roadmaps, quizzes and free-text completions. Implementations
// must be safe for concurrent use; the HTTP layer shares one instance.
type Generator interface {
	GenerateRoadmap(ctx context.Context, topic, details string) (*models.RoadmapDocument, error)
	GenerateQuiz(ctx context.Context, topic, difficulty, planContext string, weekStart, weekEnd int) (models.QuestionList, error)
	VideoSummary(ctx context.Context, title, description string) (string, error)
	AnswerQuestion(ctx context.Context, question, context string) (string, error)
}

// Client talks to the Gemini API. One synchronous call per invocation, no
// retries or caching; provider latency and availability are the caller's problem.
type Client struct {
	client     *genai.Client
	flashModel string
	proModel   string
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}

	return &Client{
		client:     client,
		flashModel: "gemini-2.5-flash-lite",
		proModel:   "gemini-2.5-pro",
	}, nil
}

// GenerateRoadmap requests a 24-week plan as structured JSON. A response that
// fails to deserialize rejects the whole generation.
func (c *Client) GenerateRoadmap(ctx context.Context, topic, details string) (*models.RoadmapDocument, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.proModel,
		genai.Text(roadmapPrompt(topic, details)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   roadmapSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}

	var roadmap models.RoadmapDocument
	if err := json.Unmarshal([]byte(result.Text()), &roadmap); err != nil {
		return nil, fmt.Errorf("roadmap response does not match schema: %w", err)
	}
	return &roadmap, nil
}

// GenerateQuiz requests exactly 5 questions scoped to a week range of the plan.
func (c *Client) GenerateQuiz(ctx context.Context, topic, difficulty, planContext string, weekStart, weekEnd int) (models.QuestionList, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.flashModel,
		genai.Text(quizPrompt(topic, difficulty, planContext, weekStart, weekEnd)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   quizSchema,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var quiz struct {
		Questions models.QuestionList `json:"questions"`
	}
	if err := json.Unmarshal([]byte(result.Text()), &quiz); err != nil {
		return nil, fmt.Errorf("quiz response does not match schema: %w", err)
	}
	if err := validateQuestions(quiz.Questions); err != nil {
		return nil, err
	}
	return quiz.Questions, nil
}

func validateQuestions(questions models.QuestionList) error {
	if len(questions) == 0 {
		return fmt.Errorf("quiz response contains no questions")
	}
	for i, q := range questions {
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
			return fmt.Errorf("question %d has correct_answer %d out of range", i, q.CorrectAnswer)
		}
	}
	return nil
}

func (c *Client) VideoSummary(ctx context.Context, title, description string) (string, error) {
	return c.freeText(ctx, videoSummaryPrompt(title, description))
}

func (c *Client) AnswerQuestion(ctx context.Context, question, videoContext string) (string, error) {
	return c.freeText(ctx, answerPrompt(question, videoContext))
}

func (c *Client) freeText(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.flashModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("could not generate content: %w", err)
	}
	return result.Text(), nil
}
