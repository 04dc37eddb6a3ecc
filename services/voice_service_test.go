package services

import (
	"context"
	"errors"
	"testing"

	"agrimind/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVoiceService_Ask(t *testing.T) {
	tests := []struct {
		name          string
		question      string
		language      string
		aiSetup       func(*MockAssistant)
		storeSetup    func(*MockStore)
		expectedError error
	}{
		{
			name:     "Success - Answer persisted with language",
			question: "When should I plant maize?",
			language: "Swahili",
			aiSetup: func(ai *MockAssistant) {
				ai.On("GenerateFarmingAdvice", mock.Anything, "When should I plant maize?", "").
					Return("At the onset of the long rains.", nil)
			},
			storeSetup: func(store *MockStore) {
				store.On("CreateVoiceConversation", mock.MatchedBy(func(nc models.NewVoiceConversation) bool {
					return nc.Question == "When should I plant maize?" &&
						nc.Answer == "At the onset of the long rains." &&
						nc.Language == "Swahili"
				})).Return(&models.VoiceConversation{ID: "c-1", Language: "Swahili"}, nil)
			},
		},
		{
			name:     "Error - Advisor failure propagates, nothing stored",
			question: "When should I plant maize?",
			aiSetup: func(ai *MockAssistant) {
				ai.On("GenerateFarmingAdvice", mock.Anything, "When should I plant maize?", "").
					Return("", errors.New("model overloaded"))
			},
			expectedError: errors.New("model overloaded"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAI := new(MockAssistant)
			mockStore := new(MockStore)
			if tt.aiSetup != nil {
				tt.aiSetup(mockAI)
			}
			if tt.storeSetup != nil {
				tt.storeSetup(mockStore)
			}

			service := NewVoiceService(mockStore, mockAI)
			conversation, err := service.Ask(context.Background(), "user-1", tt.question, tt.language)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, conversation)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, conversation)
			}

			mockAI.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestVoiceService_History(t *testing.T) {
	mockStore := new(MockStore)
	mockStore.On("GetUserVoiceConversations", "user-1").
		Return([]*models.VoiceConversation{{ID: "c-2"}, {ID: "c-1"}}, nil)

	service := NewVoiceService(mockStore, nil)
	results, err := service.History("user-1")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	mockStore.AssertExpectations(t)
}
