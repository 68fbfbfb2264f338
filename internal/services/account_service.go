package services

import (
	"context"
	"log"
	"time"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/response_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/repositories"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/memcache"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token string, newPassword string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens memcache.ResetTokenStore
	mail        IMailService
	audit       AuditServiceInterface
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens memcache.ResetTokenStore,
	mail IMailService,
	audit AuditServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mail:        mail,
		audit:       audit,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		DisplayName:  request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
		IsActive:     true,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	a.audit.Record(ctx, db_models.AuditLog{
		UserID:   newAccount.ID.String(),
		Action:   "CREATE",
		Resource: "AUTH",
	})

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.IsActive {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := a.accountRepo.TouchLastLogin(ctx, account.ID.String(), time.Now().Unix()); err != nil {
		log.Printf("Error updating last login for %s: %v", account.ID, err)
	}

	a.audit.Record(ctx, db_models.AuditLog{
		UserID:   account.ID.String(),
		Action:   "LOGIN",
		Resource: "AUTH",
	})

	return &response_models.LoginResponse{
		Token:       token,
		UserID:      account.ID.String(),
		DisplayName: account.DisplayName,
		Role:        account.Role,
	}, nil
}

// RequestPasswordReset succeeds silently for unknown addresses so the
// endpoint cannot be used to probe which emails have accounts.
func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mail.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("Error sending reset email to %s: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) ConfirmPasswordReset(ctx context.Context, token string, newPassword string) error {
	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
