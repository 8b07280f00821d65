package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a savings tip shared by a user.
type Post struct {
	DefaultModel
	UserID        uuid.UUID
	User          UserProfile
	Title         string
	Content       string
	Category      string
	SavingsEffect string // Free text describing how much the tip saves
	LikeCount     int64  // Number of PostLike rows, maintained by ToggleLike
}

func (p *Post) BeforeSave(_ *gorm.DB) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	p.Category = strings.TrimSpace(p.Category)
	p.SavingsEffect = strings.TrimSpace(p.SavingsEffect)

	if p.Title == "" {
		return ErrPostTitleEmpty
	}

	return nil
}

// PostComment is a comment on a post.
type PostComment struct {
	DefaultModel
	PostID  uuid.UUID
	Post    Post `gorm:"constraint:OnDelete:CASCADE"`
	UserID  uuid.UUID
	User    UserProfile
	Content string
}

func (c *PostComment) BeforeSave(_ *gorm.DB) error {
	c.Content = strings.TrimSpace(c.Content)

	if c.Content == "" {
		return ErrCommentEmpty
	}

	return nil
}

// Comments returns the number of comments for the post.
func (p Post) Comments(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&PostComment{}).Where(&PostComment{PostID: p.ID}).Count(&count).Error
	return count, err
}
