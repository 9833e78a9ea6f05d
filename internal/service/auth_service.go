package service

import (
	"errors"
	"net/url"
	"strings"

	"github.com/Shandeepsugumar/quize-game-platform/internal/config"
	"github.com/Shandeepsugumar/quize-game-platform/internal/model"
	"github.com/Shandeepsugumar/quize-game-platform/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Users UserStore
	Cfg   *config.Config
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		Users: users,
		Cfg:   cfg,
	}
}

func dicebearAvatar(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(seed)
}

func (s *AuthService) Register(username, email, password string) (*model.User, string, error) {
	if _, err := s.Users.FindByEmail(email); err == nil {
		return nil, "", util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if _, err := s.Users.FindByUsername(username); err == nil {
		return nil, "", util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Username: username,
		Email:    strings.ToLower(email),
		Password: string(hashedPassword),
		Avatar:   dicebearAvatar(username),
	}
	if err := s.Users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.Users.FindByEmail(strings.ToLower(email))
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	// Google-only accounts have no password and cannot log in here.
	if user.Password == "" {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GoogleLogin finds or creates an account for a federated identity.
// A user who registered with the same email gets the Google id linked
// to their existing account.
func (s *AuthService) GoogleLogin(googleID, email, username, avatar string) (*model.User, string, error) {
	email = strings.ToLower(email)

	user, err := s.Users.FindByGoogleID(googleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.Users.FindByEmail(email)
		switch {
		case err == nil:
			// Link the Google identity to the existing account.
			user.GoogleID = googleID
			if avatar != "" {
				user.Avatar = avatar
			}
			if err := s.Users.Update(user); err != nil {
				return nil, "", err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if username == "" {
				username = strings.SplitN(email, "@", 2)[0]
			}
			if avatar == "" {
				avatar = dicebearAvatar(email)
			}
			user = &model.User{
				Username: username,
				Email:    email,
				GoogleID: googleID,
				Avatar:   avatar,
			}
			if err := s.Users.Create(user); err != nil {
				return nil, "", err
			}
		default:
			return nil, "", err
		}
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) CurrentUser(userID uint) (*model.User, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *AuthService) UpdateProfile(userID uint, username, avatar string) (*model.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if username != "" && username != user.Username {
		if _, err := s.Users.FindByUsername(username); err == nil {
			return nil, util.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = username
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	if err := s.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
