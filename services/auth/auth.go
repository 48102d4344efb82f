package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "growlife/database/repository/user"
	"growlife/models"
	"growlife/services/mail"
	"growlife/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignupInput is the validated signup payload.
type SignupInput struct {
	Username    string
	DateOfBirth *time.Time
	Mobile      string
	Email       string
	Password    string
	File        string
}

// AuthService covers signup, login and the OTP email-verification gate.
type AuthService interface {
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	Login(username, password string) (*models.User, string, error)
}

// DefaultAuthService is the production AuthService.
type DefaultAuthService struct {
	Users userRepo.UserRepository
	OTP   *OTPStore
	Mail  *mail.Service
}

// SendOTP issues a code for the email and dispatches it synchronously; a
// transport failure surfaces to the caller as the request's failure.
func (s *DefaultAuthService) SendOTP(ctx context.Context, email string) error {
	code, err := s.OTP.Issue(ctx, email)
	if err != nil {
		return err
	}

	subject, html := mail.OTPEmail(code)
	if err := s.Mail.Send(email, subject, html); err != nil {
		utils.GetLogger().Error("Failed to send OTP email", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// VerifyOTP redeems the code and marks the email verified for signup.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, email, code string) error {
	return s.OTP.Verify(ctx, email, code)
}

// Signup registers a new account. The email must have passed the OTP gate,
// username and email must be unused, and the role is inferred from the
// username shape. A welcome email goes out fire-and-forget.
func (s *DefaultAuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	verified, err := s.OTP.IsVerified(ctx, in.Email)
	if err != nil {
		utils.GetLogger().Error("Signup: verified-email check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if !verified {
		return nil, ErrEmailNotVerified
	}

	existing, err := s.Users.GetByUsername(in.Username)
	if err != nil {
		utils.GetLogger().Error("Signup: username lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.Users.GetByEmail(in.Email)
	if err != nil {
		utils.GetLogger().Error("Signup: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := models.User{
		ID:                uuid.New().String(),
		Username:          in.Username,
		DateOfBirth:       in.DateOfBirth,
		Mobile:            in.Mobile,
		Email:             in.Email,
		PasswordHash:      string(hashed),
		File:              in.File,
		Role:              InferRole(in.Username),
		Status:            models.StatusActive,
		PurchasedPolicies: []string{},
		AssignedPolicies:  []string{},
		Claims:            []models.Claim{},
		Notifications:     []models.Notification{},
		RegisteredBy:      "Self",
	}

	if err := s.Users.Create(&user); err != nil {
		utils.GetLogger().Error("Signup: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.OTP.ConsumeVerified(ctx, in.Email)

	subject, html := mail.WelcomeEmail(user.Username)
	s.Mail.Enqueue(user.Email, subject, html)

	return &user, nil
}

// Login checks credentials and issues a 7-day identity token.
func (s *DefaultAuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.Users.GetByUsername(username)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, "", fmt.Errorf("authentication failed, please try again")
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// Older records created before roles were stored fall back to inference.
	role := user.Role
	if role == "" {
		role = InferRole(user.Username)
	}

	token, err := utils.GenerateToken(user.ID, user.Username, role)
	if err != nil {
		utils.GetLogger().Error("Login: failed to generate token", zap.Error(err))
		return nil, "", fmt.Errorf("authentication failed, please try again")
	}

	user.Role = role
	return user, token, nil
}
