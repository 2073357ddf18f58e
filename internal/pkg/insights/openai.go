package insights

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/pkg/logger"
)

// chatClient is the slice of the OpenAI client the narrator uses,
// extracted so tests can substitute a failing or canned client.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAINarrator asks a chat model to summarize the snapshot. It fails
// closed: on any error from the external call the deterministic
// template output is substituted, so callers never see a failure.
type OpenAINarrator struct {
	client   chatClient
	model    string
	fallback *TemplateNarrator
}

// NewOpenAINarrator creates a narrator backed by the OpenAI chat API.
func NewOpenAINarrator(apiKey, model string) *OpenAINarrator {
	return &OpenAINarrator{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: NewTemplateNarrator(),
	}
}

// Narrate implements Narrator.
func (n *OpenAINarrator) Narrate(ctx context.Context, snapshot models.Snapshot) string {
	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: n.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(snapshot)},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Insight generation failed, using template narration")
		return n.fallback.Narrate(ctx, snapshot)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Warn().Msg("Insight generation returned no content, using template narration")
		return n.fallback.Narrate(ctx, snapshot)
	}

	return resp.Choices[0].Message.Content
}

func buildPrompt(snapshot models.Snapshot) string {
	overview, _ := json.Marshal(snapshot.Overview)
	byStatus, _ := json.Marshal(snapshot.Distributions.StudentsByStatus)
	byFaculty, _ := json.Marshal(snapshot.Distributions.StudentsByFaculty)
	enrolments, _ := json.Marshal(snapshot.Distributions.EnrolmentsByStatus)
	topProgrammes, _ := json.Marshal(snapshot.Trends.TopProgrammes)

	return fmt.Sprintf(`Analyze this university student records data and provide 3-5 key insights:

Overview: %s
Student Status Distribution: %s
Students by Faculty: %s
Enrolment Status: %s
Top Programmes: %s

Provide actionable insights about enrolment trends, student performance, faculty popularity, and recommendations for improvement.`,
		overview, byStatus, byFaculty, enrolments, topProgrammes)
}
