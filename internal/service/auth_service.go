package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scholarship_portal_backend/internal/config"
	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// NormalizeEmail lower-cases and trims an email before persist or lookup.
// Email uniqueness is case-insensitive throughout.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type AuthService struct {
	Users repository.UserStore
	Cfg   *config.Config
	oauth *oauth2.Config
}

func NewAuthService(users repository.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Users: users,
		Cfg:   cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Register provisions an account. The password is optional; when present it
// is stored as a bcrypt digest. A colliding email leaves no partial account.
func (s *AuthService) Register(name, email, password string, role model.UserRole) (*model.User, error) {
	email = NormalizeEmail(email)

	if _, err := s.Users.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	if role == "" {
		role = model.Student
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", util.ErrValidation, role)
	}

	now := time.Now()
	user := &model.User{
		Name:             name,
		Email:            email,
		Role:             role,
		Status:           model.UserActive,
		RegistrationDate: now,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if password != "" {
		digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(digest)
	}

	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login validates credentials. Absent user, missing digest and wrong password
// all collapse into the same ErrInvalidCredentials signal.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	user, err := s.Users.FindByEmail(NormalizeEmail(email))
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}
	if user.Password == "" {
		return nil, util.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// IssueSession signs a bearer token embedding identity and role.
func (s *AuthService) IssueSession(user *model.User) (string, error) {
	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// GoogleAuthURL builds the consent-screen redirect for the given CSRF state.
func (s *AuthService) GoogleAuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

type googleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleCallback exchanges the auth code, fetches the Google profile and
// returns the matching local account, provisioning a student account without
// a password digest on first login.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*model.User, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	profile, err := s.fetchGoogleProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.FindByGoogleID(profile.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now()
	user = &model.User{
		Name:             profile.Name,
		Email:            NormalizeEmail(profile.Email),
		Role:             model.Student,
		GoogleID:         profile.ID,
		Status:           model.UserActive,
		RegistrationDate: now,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
