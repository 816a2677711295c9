package db_models

import "github.com/google/uuid"

// Favorite is a user-saved place name. Kind records where the user found it
// ("media" filming spot or "theme" course place); Addr may be empty when the
// saved place never carried an address.
type Favorite struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index:idx_fav_account_name,unique"`
	Name      string    `gorm:"index:idx_fav_account_name,unique"`
	Addr      string
	Kind      string
}
