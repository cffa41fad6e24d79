package models

// Startup is a startup profile submitted for admin review
type Startup struct {
	Base         `bson:",inline"`
	Review       `bson:",inline"`
	OwnerID      string     `gorm:"size:36;index;not null" bson:"owner_id" json:"ownerId"`
	Name         string     `gorm:"size:255;not null" bson:"name" json:"name"`
	Industry     string     `gorm:"size:128" bson:"industry" json:"industry"`
	Stage        string     `gorm:"size:32" bson:"stage" json:"stage"`
	Description  string     `gorm:"type:text" bson:"description" json:"description"`
	Website      string     `gorm:"size:512" bson:"website,omitempty" json:"website,omitempty"`
	Location     string     `gorm:"size:255" bson:"location,omitempty" json:"location,omitempty"`
	FoundedYear  int        `bson:"founded_year,omitempty" json:"foundedYear,omitempty"`
	TeamSize     int        `bson:"team_size,omitempty" json:"teamSize,omitempty"`
	Tags         StringList `bson:"tags" json:"tags"`
	LogoUploadID string     `gorm:"size:36" bson:"logo_upload_id,omitempty" json:"logoUploadId,omitempty"`
}

// TableName overrides the table name for Startup
func (Startup) TableName() string {
	return "startups"
}

// StartupMetric is one reporting period of a startup's figures
type StartupMetric struct {
	Base        `bson:",inline"`
	StartupID   string `gorm:"size:36;not null;index:idx_startup_period,unique" bson:"startup_id" json:"startupId"`
	Period      string `gorm:"size:7;not null;index:idx_startup_period,unique" bson:"period" json:"period"`
	Revenue     int64  `bson:"revenue" json:"revenue"`
	ActiveUsers int64  `bson:"active_users" json:"activeUsers"`
	Burn        int64  `bson:"burn" json:"burn"`
	Headcount   int64  `bson:"headcount" json:"headcount"`
}

// TableName overrides the table name for StartupMetric
func (StartupMetric) TableName() string {
	return "startup_metrics"
}
