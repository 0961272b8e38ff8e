package services

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"time"

	"game-store-service/models"
	"game-store-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var phonePattern = regexp.MustCompile(`^0\d{9}$`)

const otpTTL = 5 * time.Minute

// AuthService manages accounts and the mock login flow. No real SMS is
// sent: OTP codes are stored and logged only, and verification checks the
// stored code against the submitted one.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, *ServiceError)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, *ServiceError)
	RequestOTP(ctx context.Context, phone string) *ServiceError
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, *ServiceError)
	GetProfile(ctx context.Context, userID string) (*models.User, *ServiceError)
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	otpRepo  repository.OTPRepository
	tokens   *TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	otpRepo repository.OTPRepository,
	tokens *TokenService,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a new account with a hashed password.
func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, *ServiceError) {
	if !phonePattern.MatchString(req.Phone) {
		return nil, &ServiceError{StatusCode: 400, Message: "Invalid phone number format"}
	}

	if _, err := s.userRepo.FindByPhone(ctx, req.Phone); err == nil {
		return nil, &ServiceError{StatusCode: 409, Message: "Phone number already registered"}
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check existing user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         "customer",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	return s.issueToken(user)
}

// Login authenticates with phone + password.
func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, *ServiceError) {
	user, err := s.userRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid phone or password"}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid phone or password"}
	}
	return s.issueToken(user)
}

// RequestOTP issues a 6-digit code for the phone number. The code is logged
// instead of sent over SMS.
func (s *authServiceImpl) RequestOTP(ctx context.Context, phone string) *ServiceError {
	if !phonePattern.MatchString(phone) {
		return &ServiceError{StatusCode: 400, Message: "Invalid phone number format"}
	}

	challenge := &models.OTPChallenge{
		Phone:     phone,
		Code:      randomDigits(6),
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepo.Put(ctx, challenge); err != nil {
		s.logger.Error("Failed to store OTP challenge", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to send OTP"}
	}

	s.logger.Info("OTP issued (mock, not sent)",
		zap.String("phone", phone),
		zap.String("code", challenge.Code),
	)
	return nil
}

// VerifyOTP exchanges a valid code for a session token, creating the account
// on first login.
func (s *authServiceImpl) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.AuthResponse, *ServiceError) {
	challenge, err := s.otpRepo.Get(ctx, req.Phone)
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "No pending code for this phone"}
	}
	if time.Now().After(challenge.ExpiresAt) {
		_ = s.otpRepo.Delete(ctx, req.Phone)
		return nil, &ServiceError{StatusCode: 401, Message: "Code has expired"}
	}
	if challenge.Code != req.Code {
		return nil, &ServiceError{StatusCode: 401, Message: "Incorrect code"}
	}
	_ = s.otpRepo.Delete(ctx, req.Phone)

	user, err := s.userRepo.FindByPhone(ctx, req.Phone)
	if errors.Is(err, repository.ErrNotFound) {
		now := time.Now()
		user = &models.User{
			ID:        uuid.NewString(),
			Phone:     req.Phone,
			Role:      "customer",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			s.logger.Error("Failed to create user from OTP login", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to sign in"}
		}
	} else if err != nil {
		s.logger.Error("Failed to load user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to sign in"}
	}

	return s.issueToken(user)
}

// GetProfile returns the authenticated user's record.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (*models.User, *ServiceError) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "User not found"}
		}
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch profile"}
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *authServiceImpl) issueToken(user *models.User) (*models.AuthResponse, *ServiceError) {
	token, err := s.tokens.Generate(user.ID, user.Name, user.Role)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to sign in"}
	}
	sanitized := *user
	sanitized.PasswordHash = ""
	return &models.AuthResponse{Token: token, User: &sanitized}, nil
}

// randomDigits returns n random decimal digits.
func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits)
}
