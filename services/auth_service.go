package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alekz7/tastyrestaurant/entity"
	"github.com/alekz7/tastyrestaurant/repository"
	"github.com/alekz7/tastyrestaurant/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo    *repository.UserRepository
	companyRepo *repository.CompanyRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, companyRepo *repository.CompanyRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

// Register สร้าง user ใหม่ ถ้า email ซ้ำจะ error
// สมัครด้วย role=company พร้อมชื่อบริษัท → หา/สร้างบริษัทให้อัตโนมัติ
func (s *AuthService) Register(name, email, password, role, companyName string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrConflict
	}

	if role == "" {
		role = RoleCustomer
	}

	var company *entity.Company
	if role == RoleCompany && companyName != "" {
		company, err = s.companyRepo.FindByName(companyName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			company = &entity.Company{
				Name:         companyName,
				ContactName:  name,
				ContactEmail: email,
			}
			if err := s.companyRepo.Create(company); err != nil {
				return "", nil, err
			}
		} else if err != nil {
			return "", nil, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if company != nil {
		user.CompanyID = &company.ID
		user.Company = company
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.CompanyID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.CompanyID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// GetProfile
func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
