package models

// Message is a direct chat message between two users
type Message struct {
	Base           `bson:",inline"`
	ConversationID string `gorm:"size:80;index;not null" bson:"conversation_id" json:"conversationId"`
	SenderID       string `gorm:"size:36;index;not null" bson:"sender_id" json:"senderId"`
	RecipientID    string `gorm:"size:36;index;not null" bson:"recipient_id" json:"recipientId"`
	Body           string `gorm:"type:text;not null" bson:"body" json:"body"`
}

// TableName overrides the table name for Message
func (Message) TableName() string {
	return "messages"
}

// ConversationKey is the same for both directions of a conversation
func ConversationKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// Upload is the metadata of a stored file
type Upload struct {
	Base        `bson:",inline"`
	OwnerID     string `gorm:"size:36;index;not null" bson:"owner_id" json:"ownerId"`
	FileName    string `gorm:"size:255;not null" bson:"file_name" json:"fileName"`
	ContentType string `gorm:"size:128;not null" bson:"content_type" json:"contentType"`
	Size        int64  `gorm:"not null" bson:"size" json:"size"`
	StorageKey  string `gorm:"size:64;not null" bson:"storage_key" json:"-"`
}

// TableName overrides the table name for Upload
func (Upload) TableName() string {
	return "uploads"
}
