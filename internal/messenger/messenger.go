// Package messenger synchronizes the local view of one chat with the
// remote messages API. Every operation issues a single authorized request
// and touches the store only after a successful response, so a failed call
// always leaves the local view exactly as it was.
package messenger

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/wasa-chat-client/internal/logger"
	"bitbucket.org/sotavant/wasa-chat-client/internal/models"
	"bitbucket.org/sotavant/wasa-chat-client/internal/session"
	"bitbucket.org/sotavant/wasa-chat-client/internal/store"
)

type Messenger struct {
	client *resty.Client
	tokens session.Source
	store  *store.Store
	chatID uint
}

// New builds a messenger for one chat. baseURL points at the API root,
// e.g. "http://localhost:8080".
func New(baseURL string, chatID uint, tokens session.Source) *Messenger {
	return &Messenger{
		client: resty.New().SetBaseURL(baseURL),
		tokens: tokens,
		store:  store.New(),
		chatID: chatID,
	}
}

// Store exposes the local message sequence for rendering.
func (m *Messenger) Store() *store.Store {
	return m.store
}

func (m *Messenger) token() (string, error) {
	token, ok := session.Resolve(m.tokens)
	if !ok {
		logger.Log.Debug("token missing, user not authorized")
		return "", ErrNoToken
	}
	return token, nil
}

// SendMessage posts trimmed content to the chat and appends the created
// message to the store. The server assigns the id and the sender.
func (m *Messenger) SendMessage(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		logger.Log.Debug("refusing to send empty message")
		return ErrEmptyContent
	}

	token, err := m.token()
	if err != nil {
		return err
	}

	var created models.Message
	var apiErr models.ErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(models.SendMessageRequest{ChatID: m.chatID, Content: content}).
		SetResult(&created).
		SetError(&apiErr).
		Post("/api/messages")
	if err != nil {
		logger.Log.Debug("error sending message", zap.Error(err))
		return fmt.Errorf("send message: %w", err)
	}
	if resp.IsError() {
		logger.Log.Debug("send message rejected",
			zap.Int("status", resp.StatusCode()), zap.String("error", apiErr.Error))
		return &StatusError{Code: resp.StatusCode(), Message: apiErr.Error}
	}
	// without an id and a sender there is nothing valid to append
	if created.ID == 0 || created.SenderID == 0 {
		logger.Log.Debug("send response lacks id or sender",
			zap.Uint("id", created.ID), zap.Uint("senderId", created.SenderID))
		return ErrBadResponse
	}

	m.store.Append(store.Message{
		ID:       created.ID,
		ChatID:   m.chatID,
		SenderID: created.SenderID,
		Content:  content,
		IsMine:   true,
	})
	return nil
}

// DeleteMessage removes the message on the server and then locally.
// Removing an id the store does not hold is a no-op locally.
func (m *Messenger) DeleteMessage(ctx context.Context, id uint) error {
	token, err := m.token()
	if err != nil {
		return err
	}

	var apiErr models.ErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&apiErr).
		Delete(fmt.Sprintf("/api/messages/%d", id))
	if err != nil {
		logger.Log.Debug("error deleting message", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("delete message: %w", err)
	}
	if resp.IsError() {
		logger.Log.Debug("delete message rejected",
			zap.Uint("id", id), zap.Int("status", resp.StatusCode()), zap.String("error", apiErr.Error))
		return &StatusError{Code: resp.StatusCode(), Message: apiErr.Error}
	}

	m.store.Remove(id)
	return nil
}

// CommentMessage attaches a comment to a message. The text is sent and
// stored verbatim; only the precondition check trims it.
func (m *Messenger) CommentMessage(ctx context.Context, id uint, comment string) error {
	if strings.TrimSpace(comment) == "" {
		logger.Log.Debug("refusing to send empty comment", zap.Uint("id", id))
		return ErrEmptyComment
	}

	token, err := m.token()
	if err != nil {
		return err
	}

	var apiErr models.ErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(models.CommentRequest{Comment: comment}).
		SetError(&apiErr).
		Put(fmt.Sprintf("/api/messages/%d/comment", id))
	if err != nil {
		logger.Log.Debug("error adding comment", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("comment message: %w", err)
	}
	if resp.IsError() {
		logger.Log.Debug("comment rejected",
			zap.Uint("id", id), zap.Int("status", resp.StatusCode()), zap.String("error", apiErr.Error))
		return &StatusError{Code: resp.StatusCode(), Message: apiErr.Error}
	}

	m.store.SetComment(id, comment)
	return nil
}

// UncommentMessage removes the comment of a message. Repeating it when the
// comment is already gone locally changes nothing further.
func (m *Messenger) UncommentMessage(ctx context.Context, id uint) error {
	token, err := m.token()
	if err != nil {
		return err
	}

	var apiErr models.ErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&apiErr).
		Delete(fmt.Sprintf("/api/messages/%d/comment", id))
	if err != nil {
		logger.Log.Debug("error deleting comment", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("uncomment message: %w", err)
	}
	if resp.IsError() {
		logger.Log.Debug("uncomment rejected",
			zap.Uint("id", id), zap.Int("status", resp.StatusCode()), zap.String("error", apiErr.Error))
		return &StatusError{Code: resp.StatusCode(), Message: apiErr.Error}
	}

	m.store.ClearComment(id)
	return nil
}

// ForwardMessage submits the staged forward target of a message. The copy
// lives in the target chat, so on success only the staged field is
// cleared; no other message state changes. The target must be staged via
// the store before the token is even looked at.
func (m *Messenger) ForwardMessage(ctx context.Context, id uint) error {
	msg, ok := m.store.Get(id)
	if !ok || strings.TrimSpace(msg.ForwardChatName) == "" {
		logger.Log.Debug("no forward target staged", zap.Uint("id", id))
		return ErrEmptyChatName
	}

	token, err := m.token()
	if err != nil {
		return err
	}

	var apiErr models.ErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(models.ForwardRequest{MessageID: id, ChatName: msg.ForwardChatName}).
		SetError(&apiErr).
		Post("/api/messages/forward")
	if err != nil {
		logger.Log.Debug("error forwarding message", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("forward message: %w", err)
	}
	if resp.IsError() {
		logger.Log.Debug("forward rejected",
			zap.Uint("id", id), zap.Int("status", resp.StatusCode()), zap.String("error", apiErr.Error))
		return &StatusError{Code: resp.StatusCode(), Message: apiErr.Error}
	}

	m.store.ClearForward(id)
	return nil
}

// LoadConversation fetches the message list of the chat and replaces the
// store contents with it. IsMine cannot be derived for fetched history and
// stays false.
func (m *Messenger) LoadConversation(ctx context.Context) error {
	token, err := m.token()
	if err != nil {
		return err
	}

	var fetched []models.Message
	var apiErr models.ErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&fetched).
		SetError(&apiErr).
		Get(fmt.Sprintf("/api/chats/%d", m.chatID))
	if err != nil {
		logger.Log.Debug("error loading conversation", zap.Uint("chatId", m.chatID), zap.Error(err))
		return fmt.Errorf("load conversation: %w", err)
	}
	if resp.IsError() {
		logger.Log.Debug("load conversation rejected",
			zap.Uint("chatId", m.chatID), zap.Int("status", resp.StatusCode()), zap.String("error", apiErr.Error))
		return &StatusError{Code: resp.StatusCode(), Message: apiErr.Error}
	}

	msgs := make([]store.Message, 0, len(fetched))
	for _, msg := range fetched {
		msgs = append(msgs, store.Message{
			ID:       msg.ID,
			ChatID:   msg.ChatID,
			SenderID: msg.SenderID,
			Content:  msg.Content,
			Comment:  msg.Comment,
		})
	}
	m.store.Load(msgs)
	return nil
}

// Conversations returns the user's chat list. It never touches the store.
func (m *Messenger) Conversations(ctx context.Context) ([]models.Chat, error) {
	token, err := m.token()
	if err != nil {
		return nil, err
	}

	var chats []models.Chat
	var apiErr models.ErrorResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&chats).
		SetError(&apiErr).
		Get("/api/chats")
	if err != nil {
		logger.Log.Debug("error listing chats", zap.Error(err))
		return nil, fmt.Errorf("list chats: %w", err)
	}
	if resp.IsError() {
		logger.Log.Debug("list chats rejected",
			zap.Int("status", resp.StatusCode()), zap.String("error", apiErr.Error))
		return nil, &StatusError{Code: resp.StatusCode(), Message: apiErr.Error}
	}

	return chats, nil
}
