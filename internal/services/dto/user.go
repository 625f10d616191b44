package dto

import "time"

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

// PublicProfileResponse is a user's profile as other users see it: no email,
// no verification state.
type PublicProfileResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio,omitempty"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
	CreatedAt      time.Time `json:"created_at"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type CommentResponse struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	User      ParticipantInfo `json:"user"`
	CreatedAt time.Time       `json:"created_at"`
}
