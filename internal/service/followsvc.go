package service

import (
	"context"
	"slices"

	"gameshelf/internal/domain"
)

type FollowService struct {
	Profiles ProfilesStore
}

// Follow adds a directed edge: followerID starts following targetID. The
// edge is mirrored on both profiles and must stay symmetric.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID int) (domain.Profile, error) {
	if followerID == targetID {
		return domain.Profile{}, domain.NewValidationError(map[string]string{"target_id": "cannot follow yourself"})
	}

	follower, err := s.Profiles.GetProfile(ctx, followerID)
	if err != nil {
		return domain.Profile{}, err
	}
	target, err := s.Profiles.GetProfile(ctx, targetID)
	if err != nil {
		return domain.Profile{}, err
	}
	if follower.IsFollowing(targetID) {
		return domain.Profile{}, domain.ErrAlreadyFollowing
	}

	follower.Following = append(follower.Following, targetID)
	target.Followers = append(target.Followers, followerID)
	if err := s.Profiles.UpdateProfile(ctx, follower); err != nil {
		return domain.Profile{}, err
	}
	if err := s.Profiles.UpdateProfile(ctx, target); err != nil {
		return domain.Profile{}, err
	}
	return follower, nil
}

// Unfollow removes the edge from both sides. A mirror entry that is already
// gone is removed defensively, not treated as an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID int) (domain.Profile, error) {
	follower, err := s.Profiles.GetProfile(ctx, followerID)
	if err != nil {
		return domain.Profile{}, err
	}
	target, err := s.Profiles.GetProfile(ctx, targetID)
	if err != nil {
		return domain.Profile{}, err
	}

	i := slices.Index(follower.Following, targetID)
	if i < 0 {
		return domain.Profile{}, domain.ErrNotFound
	}
	follower.Following = slices.Delete(follower.Following, i, i+1)

	if j := slices.Index(target.Followers, followerID); j >= 0 {
		target.Followers = slices.Delete(target.Followers, j, j+1)
	}

	if err := s.Profiles.UpdateProfile(ctx, follower); err != nil {
		return domain.Profile{}, err
	}
	if err := s.Profiles.UpdateProfile(ctx, target); err != nil {
		return domain.Profile{}, err
	}
	return follower, nil
}

func (s *FollowService) ListFollowers(ctx context.Context, profileID int) ([]int, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return prof.Followers, nil
}

func (s *FollowService) ListFollowing(ctx context.Context, profileID int) ([]int, error) {
	prof, err := s.Profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return prof.Following, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID int) (bool, error) {
	prof, err := s.Profiles.GetProfile(ctx, followerID)
	if err != nil {
		return false, err
	}
	return prof.IsFollowing(targetID), nil
}
