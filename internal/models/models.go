package models

// Message is the server-side representation of a chat message.
// Field names follow the server's JSON (it marshals its ORM structs as is).
type Message struct {
	ID       uint    `json:"ID"`
	ChatID   uint    `json:"ChatID"`
	SenderID uint    `json:"SenderID"`
	Content  string  `json:"Content"`
	Comment  *string `json:"Comment"`
}

// Chat is one conversation of the authenticated user.
type Chat struct {
	ID      uint   `json:"ID"`
	Name    string `json:"Name"`
	IsGroup bool   `json:"IsGroup"`
}

type SendMessageRequest struct {
	ChatID  uint   `json:"chat_id"`
	Content string `json:"content"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

type ForwardRequest struct {
	MessageID uint   `json:"message_id"`
	ChatName  string `json:"chat_name"`
}

// ErrorResponse is the body the server sends with non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
