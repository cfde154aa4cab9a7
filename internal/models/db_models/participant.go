package db_models

type Participant struct {
	BaseModel
	FirstName    string `gorm:"not null"`
	LastName     string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string

	// Set when the participant signed in through a federated provider.
	ExternalProvider *string
}
