package v0

import (
	"context"

	"github.com/agentstation/v0-cli/pkg/errors"
)

// ChatsService manages chats.
type ChatsService struct {
	client *Client
}

// CreateChatRequest is the payload for creating a chat.
type CreateChatRequest struct {
	Message   string      `json:"message"`
	System    string      `json:"system,omitempty"`
	Model     string      `json:"modelConfiguration,omitempty"`
	ProjectID string      `json:"projectId,omitempty"`
	Privacy   ChatPrivacy `json:"chatPrivacy,omitempty"`
}

// chatList is the platform's list envelope for chats.
type chatList struct {
	Data []Chat `json:"data"`
}

// Create starts a new chat from an initial message.
func (s *ChatsService) Create(ctx context.Context, req CreateChatRequest) (*Chat, error) {
	if req.Message == "" {
		return nil, errors.NewValidationError("message", req.Message, "must not be empty")
	}

	var chat Chat
	if err := s.client.post(ctx, "/chats", req, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// List returns all chats for the authenticated user.
func (s *ChatsService) List(ctx context.Context) ([]Chat, error) {
	var list chatList
	if err := s.client.get(ctx, "/chats", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Get fetches one chat including its latest version.
func (s *ChatsService) Get(ctx context.Context, chatID string) (*Chat, error) {
	if chatID == "" {
		return nil, errors.NewValidationError("chatID", chatID, "must not be empty")
	}

	var chat Chat
	if err := s.client.get(ctx, "/chats/"+chatID, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// Delete removes a chat.
func (s *ChatsService) Delete(ctx context.Context, chatID string) error {
	if chatID == "" {
		return errors.NewValidationError("chatID", chatID, "must not be empty")
	}
	return s.client.delete(ctx, "/chats/"+chatID)
}

// SendMessage adds a message to an existing chat and returns the updated
// chat with its new latest version.
func (s *ChatsService) SendMessage(ctx context.Context, chatID, message string) (*Chat, error) {
	if chatID == "" {
		return nil, errors.NewValidationError("chatID", chatID, "must not be empty")
	}
	if message == "" {
		return nil, errors.NewValidationError("message", message, "must not be empty")
	}

	body := map[string]string{"message": message}
	var chat Chat
	if err := s.client.post(ctx, "/chats/"+chatID+"/messages", body, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// Favorite marks or unmarks a chat as a favorite.
func (s *ChatsService) Favorite(ctx context.Context, chatID string, favorite bool) error {
	if chatID == "" {
		return errors.NewValidationError("chatID", chatID, "must not be empty")
	}

	body := map[string]bool{"isFavorite": favorite}
	return s.client.put(ctx, "/chats/"+chatID+"/favorite", body, nil)
}
