package service

import (
	"context"
	"errors"
	"time"

	"mojicode/internal/models"
	"mojicode/internal/repository"

	"gorm.io/gorm"
)

// RelationshipService implements toggle semantics for likes and follows.
//
// The underlying stores carry no compound uniqueness constraint across the
// pair columns, so a toggle is "look up, then flip". Each flip runs inside a
// single storage transaction: two concurrent toggles on the same pair
// serialize against each other and cannot leave duplicate or missing pair
// records.
type RelationshipService struct {
	db         *gorm.DB
	likeRepo   repository.LikeRepository
	followRepo repository.FollowRepository
}

// NewRelationshipService returns a new RelationshipService.
func NewRelationshipService(db *gorm.DB) *RelationshipService {
	return &RelationshipService{
		db:         db,
		likeRepo:   repository.NewLikeRepository(db),
		followRepo: repository.NewFollowRepository(db),
	}
}

// ToggleLike flips the like state for (postID, userEmail) and reports the
// resulting state: true when the post is now liked. The post's like count is
// kept in step inside the same transaction.
func (s *RelationshipService) ToggleLike(ctx context.Context, postID uint, userEmail string) (bool, error) {
	var nowLiked bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		likes := repository.NewLikeRepository(tx)
		posts := repository.NewPostRepository(tx)

		existing, err := likes.FindByPair(ctx, postID, userEmail)
		if err != nil {
			return err
		}

		if existing != nil {
			if err := likes.Delete(ctx, existing.ID); err != nil {
				return err
			}
			nowLiked = false
			return adjustLikeCount(ctx, posts, postID, -1)
		}

		like := &models.Like{
			PostID:    postID,
			UserEmail: userEmail,
			Timestamp: time.Now(),
		}
		if err := likes.Add(ctx, like); err != nil {
			return err
		}
		nowLiked = true
		return adjustLikeCount(ctx, posts, postID, +1)
	})
	if err != nil {
		return false, wrapTxError(err)
	}

	return nowLiked, nil
}

// adjustLikeCount moves the denormalized counter on the post, ignoring posts
// that no longer exist (likes may outlive their post; no cascade applies).
func adjustLikeCount(ctx context.Context, posts repository.PostRepository, postID uint, delta int) error {
	post, err := posts.Get(ctx, postID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil
		}
		return err
	}
	post.LikeCount += delta
	if post.LikeCount < 0 {
		post.LikeCount = 0
	}
	return posts.Put(ctx, post)
}

// ToggleFollow flips the follow state for (follower, following) and reports
// the resulting state: true when the pair is now following.
func (s *RelationshipService) ToggleFollow(ctx context.Context, followerEmail, followingEmail string) (bool, error) {
	if followerEmail == followingEmail {
		return false, models.NewValidationError("cannot follow yourself")
	}

	var nowFollowing bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		follows := repository.NewFollowRepository(tx)

		existing, err := follows.FindByPair(ctx, followerEmail, followingEmail)
		if err != nil {
			return err
		}

		if existing != nil {
			if err := follows.Delete(ctx, existing.ID); err != nil {
				return err
			}
			nowFollowing = false
			return nil
		}

		follow := &models.Follow{
			FollowerEmail:  followerEmail,
			FollowingEmail: followingEmail,
			Timestamp:      time.Now(),
		}
		if err := follows.Add(ctx, follow); err != nil {
			return err
		}
		nowFollowing = true
		return nil
	})
	if err != nil {
		return false, wrapTxError(err)
	}

	return nowFollowing, nil
}

// GetFollowers returns the follow records where email is being followed.
func (s *RelationshipService) GetFollowers(ctx context.Context, email string) ([]models.Follow, error) {
	return s.followRepo.GetByFollowing(ctx, email)
}

// GetFollowing returns the follow records where email is the follower.
func (s *RelationshipService) GetFollowing(ctx context.Context, email string) ([]models.Follow, error) {
	return s.followRepo.GetByFollower(ctx, email)
}

// GetLikes returns the like records for a post.
func (s *RelationshipService) GetLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.likeRepo.GetByPost(ctx, postID)
}

// IsLiked reports whether userEmail currently likes the post.
func (s *RelationshipService) IsLiked(ctx context.Context, postID uint, userEmail string) (bool, error) {
	existing, err := s.likeRepo.FindByPair(ctx, postID, userEmail)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

// wrapTxError keeps AppError codes intact and maps raw commit failures to
// TransactionAborted so callers know the whole toggle is safe to retry.
func wrapTxError(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return models.NewTransactionAbortedError(err)
}
