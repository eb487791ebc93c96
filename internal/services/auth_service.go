package services

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/domain/models"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/fare"
	"github.com/Yarwood-cmd/texas-airport-fullstack/internal/utils"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	Users     UserDirectory
	JWTSecret []byte
	RequestID string
}

func (s AuthService) WithRequestID(requestID string) AuthService {
	s.RequestID = requestID
	return s
}

type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	PhoneNumber  string `json:"phone_number"`
	CustomerType string `json:"customer_type"`
	MilesFlown   int    `json:"miles_flown"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a user account. New accounts default to REGULAR
// customers with the USER role.
func (s AuthService) Register(in RegisterInput) (models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "invalid email"}
	}
	if len(in.Password) < 6 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "at least 6 characters"}
	}
	customerType := models.CustomerRegular
	if ct := models.CustomerType(strings.ToUpper(strings.TrimSpace(in.CustomerType))); ct == models.CustomerFrequentFlyer {
		customerType = ct
	}
	miles := in.MilesFlown
	if miles < 0 {
		return models.User{}, domain.ValidationError{Field: "miles_flown", Msg: "must not be negative"}
	}
	// registering straight into the program earns only what the miles
	// warrant; the SILVER floor belongs to the upgrade path
	level := models.MembershipNone
	if customerType == models.CustomerFrequentFlyer {
		level = fare.MembershipLevelFor(miles)
	} else {
		miles = 0
	}

	exists, err := s.Users.EmailExists(email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	user, err := s.Users.Create(models.User{
		Name:            name,
		Email:           email,
		PasswordHash:    string(hash),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		CustomerType:    customerType,
		MilesFlown:      miles,
		MembershipLevel: level,
		Role:            models.RoleUser,
	})
	if err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "registered", email)
	return user, nil
}

// Login verifies credentials and issues a signed token.
func (s AuthService) Login(email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return AuthResult{}, domain.AuthError{Msg: "wrong email or password"}
		}
		return AuthResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, domain.AuthError{Msg: "wrong email or password"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", email)
	return AuthResult{Token: signed, User: user}, nil
}

// upgradeLevel places an upgrading customer at the level their recorded
// miles warrant, SILVER at minimum.
func upgradeLevel(miles int) models.MembershipLevel {
	if level := fare.MembershipLevelFor(miles); level != models.MembershipNone {
		return level
	}
	return models.MembershipSilver
}

// UpgradeToFrequentFlyer switches a REGULAR customer into the loyalty
// program at the level their recorded miles warrant, SILVER minimum.
func (s AuthService) UpgradeToFrequentFlyer(userID int64) (models.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if user.CustomerType == models.CustomerFrequentFlyer {
		return models.User{}, domain.StateError{Msg: "already a frequent flyer"}
	}
	user.CustomerType = models.CustomerFrequentFlyer
	user.MembershipLevel = upgradeLevel(user.MilesFlown)
	if err := s.Users.Update(user); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "upgraded", user.Email)
	return user, nil
}

// Profile returns the account for an authenticated user id.
func (s AuthService) Profile(userID int64) (models.User, error) {
	return s.Users.FindByID(userID)
}

type ProfileUpdateInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateProfile changes the account's contact details. Email, loyalty
// state and role are not editable here.
func (s AuthService) UpdateProfile(userID int64, in ProfileUpdateInput) (models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	user.Name = name
	user.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	if err := s.Users.Update(user); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "profile_updated", user.Email)
	return user, nil
}
