// Package seed populates a development database with generated content.
package seed

import (
	"context"
	"fmt"

	"mojicode/internal/repository"
	"mojicode/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

const (
	devUserCount        = 8
	devPostsPerUser     = 3
	devCommentsPerPost  = 2
	devFollowsPerUser   = 3
	devSeedPassword     = "devpassword"
	devGeneratorSeeding = 42
)

// Dev fills the database with deterministic fake users, posts, comments,
// likes, and follows. Existing records are left alone; duplicate emails from
// a prior run are skipped.
func Dev(ctx context.Context, db *gorm.DB) error {
	faker := gofakeit.New(devGeneratorSeeding)

	identity := service.NewIdentityService(repository.NewUserRepository(db))
	posts := service.NewPostService(repository.NewPostRepository(db))
	comments := service.NewCommentService(repository.NewCommentRepository(db))
	relationships := service.NewRelationshipService(db)

	emails := make([]string, 0, devUserCount)
	for i := 0; i < devUserCount; i++ {
		email := fmt.Sprintf("%s.%d@example.com", faker.Username(), i)
		user, err := identity.CreateUser(ctx, service.CreateUserInput{
			Email:     email,
			FirstName: faker.FirstName(),
			LastName:  faker.LastName(),
			Password:  devSeedPassword,
		})
		if err != nil {
			continue
		}
		emails = append(emails, user.Email)
	}

	var postIDs []uint
	for _, email := range emails {
		for i := 0; i < devPostsPerUser; i++ {
			post, err := posts.CreatePost(ctx, service.CreatePostInput{
				AuthorEmail: email,
				Content:     faker.Sentence(12),
			})
			if err != nil {
				return err
			}
			postIDs = append(postIDs, post.ID)
		}
	}

	for _, postID := range postIDs {
		for i := 0; i < devCommentsPerPost && i < len(emails); i++ {
			if _, err := comments.AddComment(ctx, postID, emails[i], faker.Sentence(8)); err != nil {
				return err
			}
		}
		if len(emails) > 0 {
			if _, err := relationships.ToggleLike(ctx, postID, emails[int(postID)%len(emails)]); err != nil {
				return err
			}
		}
	}

	for i, email := range emails {
		for j := 1; j <= devFollowsPerUser && j < len(emails); j++ {
			target := emails[(i+j)%len(emails)]
			if target == email {
				continue
			}
			if _, err := relationships.ToggleFollow(ctx, email, target); err != nil {
				return err
			}
		}
	}

	return nil
}
