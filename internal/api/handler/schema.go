package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/reelhub/media-api/internal/api/validation"
	"github.com/reelhub/media-api/internal/core/domain"
)

// --- Validation rules, evaluated in order ---

var SignupRules = []validation.Rule{
	validation.Required("username", "username is required"),
	validation.Required("password", "password is required"),
	validation.MinLen("password", 8, "password minimum 8 characters"),
	validation.Required("displayName", "displayName is required"),
}

var SigninRules = []validation.Rule{
	validation.Required("username", "username is required"),
	validation.Required("password", "password is required"),
}

var UpdatePasswordRules = []validation.Rule{
	validation.Required("password", "password is required"),
	validation.Required("newPassword", "newPassword is required"),
	validation.MinLen("newPassword", 8, "newPassword minimum 8 characters"),
}

var AddFavoriteRules = []validation.Rule{
	validation.Required("mediaType", "mediaType is required"),
	validation.OneOf("mediaType", "mediaType invalid", domain.MediaTypes...),
	validation.Required("mediaId", "mediaId is required"),
	validation.Required("mediaTitle", "mediaTitle is required"),
	validation.Required("mediaPoster", "mediaPoster is required"),
	validation.Required("mediaRate", "mediaRate is required"),
}

var CreateReviewRules = []validation.Rule{
	validation.Required("mediaId", "mediaId is required"),
	validation.MinLen("mediaId", 1, "mediaId cannot be empty"),
	validation.Required("content", "content is required"),
	validation.MinLen("content", 1, "content cannot be empty"),
	validation.Required("mediaType", "mediaType is required"),
	validation.OneOf("mediaType", "mediaType is invalid", domain.MediaTypes...),
	validation.Required("mediaTitle", "mediaTitle is required"),
	validation.Required("mediaPoster", "mediaPoster is required"),
}

// --- Request types ---

// flexString accepts either a JSON string or a JSON number. Media ids come
// from the upstream API as numbers but are stored as strings.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("expected string or number")
	}
	*f = flexString(n.String())
	return nil
}

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("expected number")
	}
	*f = flexFloat(v)
	return nil
}

type signupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

type addFavoriteRequest struct {
	MediaType   string     `json:"mediaType"`
	MediaID     flexString `json:"mediaId"`
	MediaTitle  string     `json:"mediaTitle"`
	MediaPoster string     `json:"mediaPoster"`
	MediaRate   flexFloat  `json:"mediaRate"`
}

type createReviewRequest struct {
	MediaID     flexString `json:"mediaId"`
	Content     string     `json:"content"`
	MediaType   string     `json:"mediaType"`
	MediaTitle  string     `json:"mediaTitle"`
	MediaPoster string     `json:"mediaPoster"`
}

// --- Response types ---
// Entities are shaped explicitly so storage ids and credentials never leak.

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// authResponse flattens the user fields next to the token.
type authResponse struct {
	Token string `json:"token"`
	userResponse
}

type favoriteResponse struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	MediaType   string    `json:"mediaType"`
	MediaID     string    `json:"mediaId"`
	MediaTitle  string    `json:"mediaTitle"`
	MediaPoster string    `json:"mediaPoster"`
	MediaRate   float64   `json:"mediaRate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// reviewResponse.User is the author object when it was loaded, otherwise
// the author's id.
type reviewResponse struct {
	ID          string    `json:"id"`
	User        any       `json:"user"`
	Content     string    `json:"content"`
	MediaType   string    `json:"mediaType"`
	MediaID     string    `json:"mediaId"`
	MediaTitle  string    `json:"mediaTitle"`
	MediaPoster string    `json:"mediaPoster"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}
