package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAdminRepo struct {
	admins map[int64]*domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[int64]*domain.Admin{}}
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	clone := *admin
	r.admins[admin.ID] = &clone
	return nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	a, found := r.admins[id]
	if !found {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	a, found := r.admins[id]
	if !found {
		return gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		switch column {
		case "email":
			a.Email = value.(string)
		case "password":
			a.Password = value.(string)
		case "name":
			a.Name = value.(string)
		case "last_login":
			a.LastLogin = value.(time.Time)
		}
	}
	return nil
}

func (r *fakeAdminRepo) Delete(ctx context.Context, id int64) error {
	delete(r.admins, id)
	return nil
}

func (r *fakeAdminRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

func TestRegisterValidation(t *testing.T) {
	service := NewAdminService(newFakeAdminRepo())
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		admin    string
	}{
		{"bad email", "not-an-email", "password123", "Admin"},
		{"short password", "a@b.com", "short", "Admin"},
		{"short name", "a@b.com", "password123", "A"},
	}
	for _, tc := range cases {
		_, err := service.Register(ctx, tc.email, tc.password, tc.admin)
		apperr, isAppErr := apperrors.From(err)
		if !isAppErr || apperr.StatusCode != 400 {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestRegisterHashesAndStrips(t *testing.T) {
	repo := newFakeAdminRepo()
	service := NewAdminService(repo)

	admin, err := service.Register(context.Background(), "shop@example.com", "password123", "Shop Owner")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if admin.Password != "" {
		t.Error("returned admin must not carry the password hash")
	}

	stored := repo.admins[admin.ID]
	if stored.Password == "password123" || stored.Password == "" {
		t.Fatal("stored password must be a hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewAdminService(newFakeAdminRepo())
	ctx := context.Background()

	if _, err := service.Register(ctx, "shop@example.com", "password123", "First"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := service.Register(ctx, "shop@example.com", "password456", "Second")
	apperr, isAppErr := apperrors.From(err)
	if !isAppErr || apperr.StatusCode != 400 {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginGenericFailureMessage(t *testing.T) {
	service := NewAdminService(newFakeAdminRepo())
	ctx := context.Background()

	if _, err := service.Register(ctx, "shop@example.com", "password123", "Shop Owner"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, unknownErr := service.Login(ctx, "nobody@example.com", "password123")
	_, badPassErr := service.Login(ctx, "shop@example.com", "wrong-password")

	unknown, isAppErr := apperrors.From(unknownErr)
	if !isAppErr || unknown.StatusCode != 401 {
		t.Fatalf("expected unauthorized for unknown email, got %v", unknownErr)
	}
	badPass, isAppErr := apperrors.From(badPassErr)
	if !isAppErr || badPass.StatusCode != 401 {
		t.Fatalf("expected unauthorized for bad password, got %v", badPassErr)
	}
	if unknown.Message != badPass.Message {
		t.Errorf("failure messages differ: %q vs %q", unknown.Message, badPass.Message)
	}
}

func TestLoginSuccessUpdatesLastLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	service := NewAdminService(repo)
	ctx := context.Background()

	registered, err := service.Register(ctx, "shop@example.com", "password123", "Shop Owner")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	admin, err := service.Login(ctx, "shop@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if admin.Password != "" {
		t.Error("login response must not carry the password hash")
	}
	if repo.admins[registered.ID].LastLogin.IsZero() {
		t.Error("last login not updated")
	}
}

type failingUpdateAdminRepo struct {
	*fakeAdminRepo
}

func (r *failingUpdateAdminRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return errors.New("connection reset")
}

func TestLoginSurvivesLastLoginUpdateFailure(t *testing.T) {
	inner := newFakeAdminRepo()
	service := NewAdminService(inner)
	ctx := context.Background()

	if _, err := service.Register(ctx, "shop@example.com", "password123", "Shop Owner"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	service = NewAdminService(&failingUpdateAdminRepo{fakeAdminRepo: inner})
	admin, err := service.Login(ctx, "shop@example.com", "password123")
	if err != nil {
		t.Fatalf("login must succeed despite the bookkeeping failure: %v", err)
	}
	if admin.Email != "shop@example.com" {
		t.Errorf("email = %q", admin.Email)
	}

	if logs.FilterMessage("failed to update last login").Len() != 1 {
		t.Error("last login update failure not logged")
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	service := NewAdminService(newFakeAdminRepo())

	_, err := service.Login(context.Background(), "", "")
	apperr, isAppErr := apperrors.From(err)
	if !isAppErr || apperr.StatusCode != 401 {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if apperr.Message != "Email and password are required" {
		t.Errorf("message = %q", apperr.Message)
	}
}

func TestUpdateRejectsTakenEmail(t *testing.T) {
	service := NewAdminService(newFakeAdminRepo())
	ctx := context.Background()

	first, err := service.Register(ctx, "first@example.com", "password123", "First")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := service.Register(ctx, "second@example.com", "password123", "Second"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err = service.Update(ctx, first.ID, AdminUpdateInput{Email: "second@example.com"})
	apperr, isAppErr := apperrors.From(err)
	if !isAppErr || apperr.StatusCode != 400 {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateRehashesPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	service := NewAdminService(repo)
	ctx := context.Background()

	admin, err := service.Register(ctx, "shop@example.com", "password123", "Shop Owner")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := service.Update(ctx, admin.ID, AdminUpdateInput{Password: "newpassword1"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stored := repo.admins[admin.ID]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpassword1")); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
}

func TestDeleteLastAdminBlocked(t *testing.T) {
	service := NewAdminService(newFakeAdminRepo())
	ctx := context.Background()

	only, err := service.Register(ctx, "shop@example.com", "password123", "Shop Owner")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err = service.Delete(ctx, only.ID)
	apperr, isAppErr := apperrors.From(err)
	if !isAppErr || apperr.StatusCode != 400 {
		t.Fatalf("expected business rule error, got %v", err)
	}
	if apperr.Message != "Cannot delete the last admin account" {
		t.Errorf("message = %q", apperr.Message)
	}

	second, err := service.Register(ctx, "second@example.com", "password123", "Second")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := service.Delete(ctx, second.ID); err != nil {
		t.Errorf("delete with two admins failed: %v", err)
	}
}
