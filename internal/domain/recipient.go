package domain

// Recipient identifies where a reply must be delivered.
// It is constructed per inbound update and never persisted.
type Recipient interface {
	isRecipient()
}

// User is a private conversation with a single user.
type User struct {
	ID int64
}

// Chat is a group chat. ReplyTo carries the message id to reply to,
// TopicID the forum topic when the chat has topics enabled (0 if none).
type Chat struct {
	ID      int64
	TopicID int
	ReplyTo int
}

func (User) isRecipient() {}
func (Chat) isRecipient() {}
