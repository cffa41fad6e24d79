package models

// FundingRequest is a startup's request addressed to a funding agency
type FundingRequest struct {
	Base       `bson:",inline"`
	Review     `bson:",inline"`
	StartupID  string     `gorm:"size:36;index;not null" bson:"startup_id" json:"startupId"`
	OwnerID    string     `gorm:"size:36;index;not null" bson:"owner_id" json:"ownerId"`
	AgencyID   string     `gorm:"size:36;index;not null" bson:"agency_id" json:"agencyId"`
	Amount     int64      `gorm:"not null" bson:"amount" json:"amount"`
	Currency   string     `gorm:"size:3;not null" bson:"currency" json:"currency"`
	Purpose    string     `gorm:"type:text" bson:"purpose" json:"purpose"`
	Milestones StringList `bson:"milestones" json:"milestones"`
}

// TableName overrides the table name for FundingRequest
func (FundingRequest) TableName() string {
	return "funding_requests"
}
