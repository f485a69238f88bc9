package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/visa-assistant/internal/adapter"
	"github.com/MKhiriev/visa-assistant/internal/logger"
	"github.com/MKhiriev/visa-assistant/internal/store"
	"github.com/MKhiriev/visa-assistant/internal/validators"
	"github.com/MKhiriev/visa-assistant/models"
)

// SystemPrompt is the fixed instruction sent ahead of every user prompt.
const SystemPrompt = `You are a professional assistant specialized in helping patients understand the visa application process for healthcare-related travel (e.g., traveling abroad for medical treatment or checkups).

- Your main focus is to provide clear, concise, and accurate guidance on healthcare visa steps, required documents, travel planning, and related questions.
- You can also engage in general conversation, answer everyday questions like greetings, weather, or small talk.
- If a question is very specific to another professional domain (e.g., computers, IT, software development, finance, engineering), politely respond:
  'I'm sorry, but I can only provide guidance on healthcare visa and travel-related questions.'
- If you do not understand a question, respond:
  'I'm not sure I understood that. Could you please rephrase your question?'
- Always keep responses clear, helpful, and professional.
`

type chatService struct {
	userRepository    store.UserRepository
	chatLogRepository store.ChatLogRepository
	completion        adapter.CompletionClient
	validator         validators.Validator

	logger *logger.Logger
}

func NewChatService(
	userRepository store.UserRepository,
	chatLogRepository store.ChatLogRepository,
	completion adapter.CompletionClient,
	validator validators.Validator,
	logger *logger.Logger,
) ChatService {
	return &chatService{
		userRepository:    userRepository,
		chatLogRepository: chatLogRepository,
		completion:        completion,
		validator:         validator,
		logger:            logger,
	}
}

// TalkToAI sends req.Prompt to the completion API on behalf of the user
// identified by req.Email and returns the stored exchange.
//
// Nothing is stored when the completion fails or comes back empty.
//
// Errors:
//   - *validators.ValidationError when prompt or email is missing;
//   - ErrUnauthorized when no user has the email;
//   - ErrRemoteService (wrapped) on transport failure, timeout or non-2xx;
//   - ErrNoAIResponse when the first choice carries no content;
//   - ErrPersistence (wrapped) when the exchange cannot be stored or re-read.
func (c *chatService) TalkToAI(ctx context.Context, req models.ChatRequest) (models.ChatLogEntry, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.ChatLogEntry{}, err
	}

	user, err := c.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		log.Debug().Msg("chat request for unknown email")
		return models.ChatLogEntry{}, ErrUnauthorized
	case err != nil:
		log.Err(err).Msg("user search by email failed")
		return models.ChatLogEntry{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	messages := []models.ChatMessage{
		{Role: models.RoleSystem, Content: SystemPrompt},
		{Role: models.RoleUser, Content: req.Prompt},
	}

	start := time.Now()
	resp, err := c.completion.Complete(ctx, messages)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Dur("elapsed", time.Since(start)).Msg("completion failed")
		return models.ChatLogEntry{}, fmt.Errorf("%w: %w", ErrRemoteService, err)
	}

	content := resp.FirstContent()
	if strings.TrimSpace(content) == "" {
		log.Warn().Int64("user_id", user.ID).Int("choices", len(resp.Choices)).Msg("completion has no content")
		return models.ChatLogEntry{}, ErrNoAIResponse
	}

	saved, err := c.chatLogRepository.CreateChatLog(ctx, models.ChatLogEntry{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Prompt:    req.Prompt,
		Response:  content,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("chat log was not saved")
		return models.ChatLogEntry{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	stored, err := c.chatLogRepository.FindChatLogByID(ctx, saved.ID)
	if err != nil {
		log.Err(err).Int64("chat_log_id", saved.ID).Msg("chat log was not re-read")
		return models.ChatLogEntry{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Info().Int64("user_id", user.ID).Int64("chat_log_id", stored.ID).Dur("elapsed", time.Since(start)).Msg("ai exchange logged")
	return stored, nil
}
