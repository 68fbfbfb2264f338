package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/db_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/internal/models/request_models"
	"github.com/web-source-dev/Map-My-Soul-Backend/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) error {
	account, ok := f.accounts[email]
	if !ok {
		return errors.New("record not found")
	}
	account.PasswordHash = passwordHash
	return nil
}

func (f *fakeAccountRepo) TouchLastLogin(ctx context.Context, id string, at int64) error {
	return nil
}

type fakeResetTokens struct {
	tokens map[string]string
}

func newFakeResetTokens() *fakeResetTokens {
	return &fakeResetTokens{tokens: make(map[string]string)}
}

func (f *fakeResetTokens) Set(token, email string, ttl time.Duration) {
	f.tokens[token] = email
}

func (f *fakeResetTokens) Consume(token string) string {
	email := f.tokens[token]
	delete(f.tokens, token)
	return email
}

func (f *fakeResetTokens) Peek(token string) (string, bool) {
	email, ok := f.tokens[token]
	return email, ok
}

func newTestAccountService() (AccountServiceInterface, *fakeAccountRepo, *fakeResetTokens, *fakeMailService) {
	repo := newFakeAccountRepo()
	tokens := newFakeResetTokens()
	mail := &fakeMailService{}
	service := NewAccountService(repo, tokens, mail, &fakeAuditService{})
	return service, repo, tokens, mail
}

func TestCreateAccountAndLogin(t *testing.T) {
	service, repo, _, _ := newTestAccountService()
	ctx := context.Background()

	signUp := request_models.SignUpRequest{
		DisplayName: "River",
		Email:       "river@example.com",
		Password:    "hunter22",
	}
	if err := service.CreateAccount(ctx, signUp); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	account := repo.accounts["river@example.com"]
	if account == nil {
		t.Fatal("account not stored")
	}
	if account.PasswordHash == "hunter22" {
		t.Error("password stored in plain text")
	}
	if account.Role != "user" {
		t.Errorf("Role = %q, want user", account.Role)
	}

	if err := service.CreateAccount(ctx, signUp); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("duplicate signup err = %v, want ErrEmailAlreadyExists", err)
	}

	resp, err := service.Login(ctx, request_models.LoginRequest{Email: "river@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" || resp.DisplayName != "River" {
		t.Errorf("login response = %+v", resp)
	}

	if _, err := service.Login(ctx, request_models.LoginRequest{Email: "river@example.com", Password: "wrong"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("bad password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := service.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "hunter22"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	service, repo, _, _ := newTestAccountService()
	ctx := context.Background()

	if err := service.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "River", Email: "river@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	repo.accounts["river@example.com"].IsActive = false

	if _, err := service.Login(ctx, request_models.LoginRequest{Email: "river@example.com", Password: "hunter22"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("inactive login err = %v, want ErrInvalidCredentials", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	service, repo, tokens, _ := newTestAccountService()
	ctx := context.Background()

	if err := service.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "River", Email: "river@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	oldHash := repo.accounts["river@example.com"].PasswordHash

	// Unknown addresses return success with no token issued.
	if err := service.RequestPasswordReset(ctx, "ghost@example.com"); err != nil {
		t.Errorf("unknown email reset err = %v, want nil", err)
	}
	if len(tokens.tokens) != 0 {
		t.Errorf("token issued for unknown email")
	}

	if err := service.RequestPasswordReset(ctx, "river@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if len(tokens.tokens) != 1 {
		t.Fatalf("issued %d tokens, want 1", len(tokens.tokens))
	}

	var token string
	for issued := range tokens.tokens {
		token = issued
	}

	if err := service.ConfirmPasswordReset(ctx, token, "newpassword"); err != nil {
		t.Fatalf("ConfirmPasswordReset: %v", err)
	}
	if repo.accounts["river@example.com"].PasswordHash == oldHash {
		t.Error("password hash unchanged after reset")
	}

	// Tokens are single-use.
	if err := service.ConfirmPasswordReset(ctx, token, "again"); !errors.Is(err, utils.ErrInvalidResetToken) {
		t.Errorf("reused token err = %v, want ErrInvalidResetToken", err)
	}
}
