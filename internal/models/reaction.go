package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostLike marks a post as liked by a user. Whether a user likes a
// post is defined by the existence of the row.
type PostLike struct {
	DefaultModel
	PostID uuid.UUID `gorm:"uniqueIndex:post_like_user"`
	Post   Post      `gorm:"constraint:OnDelete:CASCADE"`
	UserID uuid.UUID `gorm:"uniqueIndex:post_like_user"`
	User   UserProfile
}

// PostBookmark marks a post as bookmarked by a user.
type PostBookmark struct {
	DefaultModel
	PostID uuid.UUID `gorm:"uniqueIndex:post_bookmark_user"`
	Post   Post      `gorm:"constraint:OnDelete:CASCADE"`
	UserID uuid.UUID `gorm:"uniqueIndex:post_bookmark_user"`
	User   UserProfile
}

// ToggleLike likes the post for the user if they do not like it yet
// and removes the like otherwise. The like count of the post is
// adjusted in the same transaction.
//
// It returns if the post is liked after the toggle.
func ToggleLike(db *gorm.DB, postID, userID uuid.UUID) (bool, error) {
	like := &PostLike{PostID: postID, UserID: userID}

	return toggle(db, like, postID, userID, func(tx *gorm.DB, delta int) error {
		return tx.
			Model(&Post{}).
			Where("id = ?", postID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).
			Error
	})
}

// ToggleBookmark bookmarks the post for the user or removes the bookmark.
//
// It returns if the post is bookmarked after the toggle.
func ToggleBookmark(db *gorm.DB, postID, userID uuid.UUID) (bool, error) {
	return toggle(db, &PostBookmark{PostID: postID, UserID: userID}, postID, userID, nil)
}

// toggle deletes the reaction row if it exists and creates it otherwise.
// changed is called within the same transaction with +1 or -1.
func toggle(db *gorm.DB, row any, postID, userID uuid.UUID, changed func(*gorm.DB, int) error) (active bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		// Verify that the post exists to return a not found error
		err := tx.First(&Post{}, "id = ?", postID).Error
		if err != nil {
			return err
		}

		var count int64
		err = tx.Model(row).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
		if err != nil {
			return err
		}

		delta := 1
		if count > 0 {
			delta = -1
			err = tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(row).Error
		} else {
			err = tx.Create(row).Error
		}
		if err != nil {
			return err
		}

		active = delta > 0
		if changed != nil {
			return changed(tx, delta)
		}

		return nil
	})

	return active, err
}

// ReactedPosts returns the subset of posts the user has reacted to
// with the reaction type of model, e.g. PostLike{}.
func ReactedPosts(db *gorm.DB, model any, userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	reacted := make(map[uuid.UUID]bool, len(postIDs))
	if len(postIDs) == 0 {
		return reacted, nil
	}

	var ids []uuid.UUID
	err := db.
		Model(model).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		reacted[id] = true
	}

	return reacted, nil
}
