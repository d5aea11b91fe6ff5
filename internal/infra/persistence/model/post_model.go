package model

import "time"

// PostModel mirrors the 'posts' table. The composite unique index on
// (user_id, title) enforces per-owner title uniqueness; two different users
// may both own a post with the same title. Deleting a user cascades here via
// the foreign key on UserID.
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_posts_owner_title"`
	Text      string `gorm:"type:varchar(255);not null"`
	UserID    int64  `gorm:"not null;uniqueIndex:idx_posts_owner_title"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
