// Package model holds the GORM persistence models. Schema constraints
// (uniqueness, foreign keys, cascades) live here, not in the domain entities.
package model

import "time"

// UserModel mirrors the 'users' table. The store assigns integer identities;
// email and auth_token carry unique constraints that are the final arbiter of
// duplicate registrations and token collisions.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	AuthToken string `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []PostModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
