package services

import (
	"context"

	"agrimind/models"
	"agrimind/pkg/assistant"
)

// VoiceService answers farming questions and records each exchange.
type VoiceService struct {
	store ConversationStore
	ai    assistant.Client
}

func NewVoiceService(store ConversationStore, ai assistant.Client) *VoiceService {
	return &VoiceService{store: store, ai: ai}
}

// Ask generates an answer for the question and persists the
// conversation. An empty language defaults to English at the store.
func (vs *VoiceService) Ask(ctx context.Context, userID, question, language string) (*models.VoiceConversation, error) {
	answer, err := vs.ai.GenerateFarmingAdvice(ctx, question, "")
	if err != nil {
		return nil, err
	}

	return vs.store.CreateVoiceConversation(models.NewVoiceConversation{
		UserID:   userID,
		Question: question,
		Answer:   answer,
		Language: language,
	})
}

// History returns the user's past conversations, most recent first.
func (vs *VoiceService) History(userID string) ([]*models.VoiceConversation, error) {
	return vs.store.GetUserVoiceConversations(userID)
}
