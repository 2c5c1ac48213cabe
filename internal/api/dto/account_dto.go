package dto

// RegisterRequest payload for member and operator registration. Agency and
// SignupCode are only meaningful for operators.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	Agency     string `json:"agency"`
	SignupCode string `json:"signupCode"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest payload for token refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// UserResponse is the minimal public profile returned alongside tokens.
// Never carries the password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokensResponse bundles the token pair issued at member login.
type TokensResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// FavouriteRequest payload for adding a favourite hotel.
type FavouriteRequest struct {
	HotelID string `json:"hotelId"`
}

// ProfileResponse is returned by GET /profile.
type ProfileResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
