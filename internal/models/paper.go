package models

// ResearchPaper is a paper submitted by a researcher
type ResearchPaper struct {
	Base     `bson:",inline"`
	Review   `bson:",inline"`
	OwnerID  string     `gorm:"size:36;index;not null" bson:"owner_id" json:"ownerId"`
	Title    string     `gorm:"size:512;not null" bson:"title" json:"title"`
	Abstract string     `gorm:"type:text" bson:"abstract" json:"abstract"`
	Authors  StringList `bson:"authors" json:"authors"`
	Keywords StringList `bson:"keywords" json:"keywords"`
	Field    string     `gorm:"size:128" bson:"field,omitempty" json:"field,omitempty"`
	DOI      string     `gorm:"size:255" bson:"doi,omitempty" json:"doi,omitempty"`
	UploadID string     `gorm:"size:36" bson:"upload_id,omitempty" json:"uploadId,omitempty"`
}

// TableName overrides the table name for ResearchPaper
func (ResearchPaper) TableName() string {
	return "research_papers"
}
