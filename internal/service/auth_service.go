package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
	"go-salestrack/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNotAdmin           = errors.New("Invalid credentials or not an admin")
	ErrAccountDisabled    = errors.New("Account is disabled")
	ErrAccountNotFound    = errors.New("User not found")
	ErrEmailNotFound      = errors.New("Invalid email")
	ErrInvalidCode        = errors.New("Invalid verification code")
	ErrProfilePhoneTaken  = errors.New("Phone number already exists")
)

// Mailer delivers transactional email. Satisfied by pkg/mailer.
type Mailer interface {
	Send(to, subject, html string) error
}

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	AdminLogin(email, password string) (*LoginResponse, error)
	GetProfile(accountID uuid.UUID) (*ProfileResponse, error)
	UpdateProfile(accountID uuid.UUID, req *UpdateProfileRequest) (*model.AccountResponse, error)
	ForgotPassword(email string) error
	VerifyEmail(email, code string) error
	ResetPassword(email, password, code string) error
}

type LoginResponse struct {
	Token string                `json:"token"`
	User  model.AccountResponse `json:"user"`
	Shop  *model.Shop           `json:"shop,omitempty"` // Customers only, when one exists
}

// ProfileResponse merges the sanitized account with the customer's shop
type ProfileResponse struct {
	model.AccountResponse
	Shop *model.Shop `json:"shop"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type authService struct {
	accountRepo      repository.AccountRepository
	shopRepo         repository.ShopRepository
	verificationRepo repository.VerificationRepository
	mailer           Mailer
}

func NewAuthService(
	accountRepo repository.AccountRepository,
	shopRepo repository.ShopRepository,
	verificationRepo repository.VerificationRepository,
	mailer Mailer,
) AuthService {
	return &authService{
		accountRepo:      accountRepo,
		shopRepo:         shopRepo,
		verificationRepo: verificationRepo,
		mailer:           mailer,
	}
}

// normalizeEmail lowercases and trims an email the way every stored email is
// normalized
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Disabled customers are denied even with correct credentials
	if account.Role == model.RoleCustomer && account.IsDisabled() {
		return nil, ErrAccountDisabled
	}

	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	response := &LoginResponse{
		Token: token,
		User:  account.ToResponse(),
	}

	// Customers also get their shop when one exists
	if account.Role == model.RoleCustomer {
		if shop, err := s.shopRepo.FindByCustomerID(account.ID); err == nil {
			response.Shop = shop
		}
	}

	return response, nil
}

func (s *authService) AdminLogin(email, password string) (*LoginResponse, error) {
	account, err := s.accountRepo.FindByEmailAndRole(normalizeEmail(email), model.RoleAdmin)
	if err != nil {
		return nil, ErrNotAdmin
	}

	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  account.ToResponse(),
	}, nil
}

func (s *authService) GetProfile(accountID uuid.UUID) (*ProfileResponse, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	profile := &ProfileResponse{AccountResponse: account.ToResponse()}

	if account.Role == model.RoleCustomer {
		if shop, err := s.shopRepo.FindByCustomerID(account.ID); err == nil {
			profile.Shop = shop
		}
	}

	return profile, nil
}

func (s *authService) UpdateProfile(accountID uuid.UUID, req *UpdateProfileRequest) (*model.AccountResponse, error) {
	account, err := s.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if req.FirstName != "" {
		account.FirstName = req.FirstName
	}
	if req.LastName != "" {
		account.LastName = req.LastName
	}
	if req.Phone != "" {
		if existing, _ := s.accountRepo.FindByPhoneExcluding(req.Phone, account.ID); existing != nil {
			return nil, ErrProfilePhoneTaken
		}
		account.Phone = req.Phone
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	response := account.ToResponse()
	return &response, nil
}

// generateCode returns a random 6-digit numeric code
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *authService) ForgotPassword(email string) error {
	normalized := normalizeEmail(email)

	if _, err := s.accountRepo.FindByEmail(normalized); err != nil {
		return ErrEmailNotFound
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	// A new request replaces any prior unconsumed code for this email
	if err := s.verificationRepo.Upsert(normalized, code); err != nil {
		return err
	}

	return s.mailer.Send(
		email,
		"Password Reset Verification Code",
		fmt.Sprintf("<p>Your verification code is <strong>%s</strong>. It will expire soon.</p>", code),
	)
}

// VerifyEmail checks the code without consuming it, so the client may verify
// repeatedly before submitting the reset
func (s *authService) VerifyEmail(email, code string) error {
	normalized := normalizeEmail(email)

	if _, err := s.accountRepo.FindByEmail(normalized); err != nil {
		return ErrEmailNotFound
	}

	if _, err := s.verificationRepo.Find(normalized, code); err != nil {
		return ErrInvalidCode
	}

	return nil
}

func (s *authService) ResetPassword(email, password, code string) error {
	normalized := normalizeEmail(email)

	account, err := s.accountRepo.FindByEmail(normalized)
	if err != nil {
		return ErrEmailNotFound
	}

	if _, err := s.verificationRepo.Find(normalized, code); err != nil {
		return ErrInvalidCode
	}

	if err := account.SetPassword(password); err != nil {
		return errors.New("failed to hash password")
	}

	if err := s.accountRepo.UpdatePassword(account.ID, account.Password); err != nil {
		return err
	}

	// Consume the code only after the password actually changed
	return s.verificationRepo.Delete(normalized, code)
}
