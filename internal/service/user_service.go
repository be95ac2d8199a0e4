package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"Community_Hub/internal/model"
	"Community_Hub/internal/pkg"
	"Community_Hub/internal/repository/postgres"
	"Community_Hub/internal/repository/redis"
)

const MinimumAge = 16

// PremiumUnlockCode opens the premium theme set.
const PremiumUnlockCode = "2002"

var premiumThemes = []string{"ocean", "forest", "sunset"}

type UserService struct {
	repo     *postgres.UserRepository
	sessions *redis.SessionRepository
	emailSvc *EmailService
}

func NewUserService(emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     &postgres.UserRepository{DB: postgres.DB},
		sessions: &redis.SessionRepository{},
		emailSvc: emailSvc,
	}
}

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	BirthDate       time.Time
}

// Register validates locally (age, password match) before any store access.
func (s *UserService) Register(in RegisterInput) (*model.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if pkg.AgeAt(in.BirthDate, time.Now()) < MinimumAge {
		return nil, ErrUnderage
	}

	taken, err := s.repo.EmailExists(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:       in.Email,
		Password:    string(hash),
		FullName:    in.FullName,
		BirthDate:   in.BirthDate,
		Preferences: model.DefaultPreferences(),
	}
	if err = s.repo.Create(user); err != nil {
		return nil, err
	}

	// Avatar seeded by the row id, so it only exists after the insert.
	avatar := fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%d", user.ID)
	if err = s.repo.UpdateProfile(user.ID, map[string]any{"avatar_url": avatar}); err != nil {
		return nil, err
	}
	user.AvatarURL = avatar
	return user, nil
}

// Login answers every failure with the same generic error so callers cannot
// probe which emails exist.
func (s *UserService) Login(email, password string) (*pkg.Pair, *model.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, nil, err
	}
	if err = s.sessions.AddToken(user.ID, token.AccessToken); err != nil {
		return nil, nil, err
	}
	_ = s.repo.TouchLastLogin(user.ID)
	return token, user, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.sessions.DeleteToken(userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, err
	}
	if err = s.sessions.AddToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// CurrentIdentity is idempotent; safe to call on every app start.
func (s *UserService) CurrentIdentity(userID uint64) (*model.User, error) {
	return s.repo.FindByID(userID)
}

func (s *UserService) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(user, string(hash))
}

func (s *UserService) SendResetCode(email string) error {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same outward behavior whether or not the account exists.
			return nil
		}
		return err
	}
	return s.emailSvc.SendResetCode(user.Email, user.Preferences.Lang)
}

func (s *UserService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyResetCode(email, code)
	if err != nil || !ok {
		return ErrCodeInvalid
	}
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(user, string(hash))
}

func (s *UserService) UpdateProfile(userID uint64, fullName, avatarURL string) error {
	fields := map[string]any{}
	if fullName != "" {
		fields["full_name"] = fullName
	}
	if avatarURL != "" {
		fields["avatar_url"] = avatarURL
	}
	if len(fields) == 0 {
		return nil
	}
	return s.repo.UpdateProfile(userID, fields)
}

// PreferencesPatch carries only the fields the caller wants changed.
type PreferencesPatch struct {
	Lang           *string  `json:"lang,omitempty"`
	Theme          *string  `json:"theme,omitempty"`
	UnlockedThemes []string `json:"unlockedThemes,omitempty"`
}

// MergePreferences applies a partial update over the stored map; untouched
// fields survive.
func MergePreferences(current model.Preferences, patch PreferencesPatch) model.Preferences {
	merged := current
	if patch.Lang != nil {
		merged.Lang = *patch.Lang
	}
	if patch.Theme != nil {
		merged.Theme = *patch.Theme
	}
	if patch.UnlockedThemes != nil {
		merged.UnlockedThemes = patch.UnlockedThemes
	}
	return merged
}

// UpdatePreferences merges and persists; on store failure the stored and
// returned state are both the old one.
func (s *UserService) UpdatePreferences(userID uint64, patch PreferencesPatch) (model.Preferences, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return model.Preferences{}, err
	}
	merged := MergePreferences(user.Preferences, patch)
	if err = s.repo.UpdatePreferences(userID, merged); err != nil {
		return user.Preferences, err
	}
	return merged, nil
}

// UnlockPremiumThemes adds the premium theme set when the code matches.
func (s *UserService) UnlockPremiumThemes(userID uint64, code string) (model.Preferences, error) {
	if code != PremiumUnlockCode {
		return model.Preferences{}, ErrCodeInvalid
	}
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return model.Preferences{}, err
	}
	merged := user.Preferences
	merged.UnlockedThemes = mergeThemes(merged.UnlockedThemes, premiumThemes)
	if err = s.repo.UpdatePreferences(userID, merged); err != nil {
		return user.Preferences, err
	}
	return merged, nil
}

func mergeThemes(current, add []string) []string {
	seen := make(map[string]bool, len(current)+len(add))
	out := make([]string, 0, len(current)+len(add))
	for _, t := range append(append([]string{}, current...), add...) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
