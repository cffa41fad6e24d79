package models

// User is a platform account
type User struct {
	Base          `bson:",inline"`
	Email         string `gorm:"uniqueIndex;size:255;not null" bson:"email" json:"email"`
	Name          string `gorm:"size:255;not null" bson:"name" json:"name"`
	Role          Role   `gorm:"size:32;index;not null" bson:"role" json:"role"`
	PasswordHash  string `gorm:"size:255;not null" bson:"password_hash" json:"-"`
	Organization  string `gorm:"size:255" bson:"organization,omitempty" json:"organization,omitempty"`
	WalletAddress string `gorm:"size:64" bson:"wallet_address,omitempty" json:"walletAddress,omitempty"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
