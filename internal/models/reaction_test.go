package models_test

import (
	"github.com/google/uuid"
	"github.com/studentbudget/backend/internal/models"
)

func (suite *TestSuiteStandard) TestToggleLike() {
	p := suite.createTestPost(models.Post{})
	alice := suite.createTestProfile(models.UserProfile{})
	bob := suite.createTestProfile(models.UserProfile{})

	tests := []struct {
		user      uuid.UUID
		active    bool
		likeCount int64
	}{
		{alice.ID, true, 1},
		{bob.ID, true, 2},
		{alice.ID, false, 1},
		{alice.ID, true, 2},
		{bob.ID, false, 1},
	}

	for i, tt := range tests {
		active, err := models.ToggleLike(models.DB, p.ID, tt.user)
		suite.Require().Nil(err, "Toggle %d", i)
		suite.Assert().Equal(tt.active, active, "Toggle %d", i)

		var post models.Post
		suite.Require().Nil(models.DB.First(&post, "id = ?", p.ID).Error)
		suite.Assert().Equal(tt.likeCount, post.LikeCount, "Toggle %d", i)
	}

	var likes int64
	suite.Require().Nil(models.DB.Model(&models.PostLike{}).Count(&likes).Error)
	suite.Assert().Equal(int64(1), likes)
}

func (suite *TestSuiteStandard) TestToggleBookmark() {
	p := suite.createTestPost(models.Post{})
	user := suite.createTestProfile(models.UserProfile{})

	active, err := models.ToggleBookmark(models.DB, p.ID, user.ID)
	suite.Require().Nil(err)
	suite.Assert().True(active)

	active, err = models.ToggleBookmark(models.DB, p.ID, user.ID)
	suite.Require().Nil(err)
	suite.Assert().False(active)

	// Bookmarks do not change the like count
	var post models.Post
	suite.Require().Nil(models.DB.First(&post, "id = ?", p.ID).Error)
	suite.Assert().Equal(int64(0), post.LikeCount)
}

func (suite *TestSuiteStandard) TestToggleFails() {
	p := suite.createTestPost(models.Post{})

	_, err := models.ToggleLike(models.DB, uuid.New(), p.UserID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.ToggleBookmark(models.DB, p.ID, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrReferenceNotFound)

	// A failed toggle is rolled back
	var post models.Post
	suite.Require().Nil(models.DB.First(&post, "id = ?", p.ID).Error)
	suite.Assert().Equal(int64(0), post.LikeCount)
}

func (suite *TestSuiteStandard) TestReactedPosts() {
	user := suite.createTestProfile(models.UserProfile{})
	liked := suite.createTestPost(models.Post{})
	notLiked := suite.createTestPost(models.Post{})

	_, err := models.ToggleLike(models.DB, liked.ID, user.ID)
	suite.Require().Nil(err)

	reacted, err := models.ReactedPosts(models.DB, &models.PostLike{}, user.ID, []uuid.UUID{liked.ID, notLiked.ID})
	suite.Require().Nil(err)
	suite.Assert().True(reacted[liked.ID])
	suite.Assert().False(reacted[notLiked.ID])

	reacted, err = models.ReactedPosts(models.DB, &models.PostBookmark{}, user.ID, []uuid.UUID{liked.ID})
	suite.Require().Nil(err)
	suite.Assert().Empty(reacted)

	reacted, err = models.ReactedPosts(models.DB, &models.PostLike{}, user.ID, nil)
	suite.Require().Nil(err)
	suite.Assert().Empty(reacted)
}
