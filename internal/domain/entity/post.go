package entity

import "time"

// Post is a short text entry owned by exactly one user. The owner is fixed at
// creation and never reassigned; the title is unique within the scope of its
// owner, so two different users may both have a post titled "A".
type Post struct {
	ID        int64     // Store-assigned integer identity.
	Title     string    // Required, at most 50 characters.
	Text      string    // Required, at most 255 characters.
	UserID    int64     // Owning user; deleting the user cascades here.
	CreatedAt time.Time // Timestamp of when this post was created.
	UpdatedAt time.Time // Timestamp of the last modification to this post.
}
