package accounts

import (
	"context"
	"fmt"
	"testing"

	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users []*domain.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	if offset >= len(r.users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	return r.users[offset:end], nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	for _, u := range r.users {
		if u.ID == id {
			if v, found := updates["email"]; found {
				u.Email = v.(string)
			}
			if v, found := updates["name"]; found {
				u.Name = v.(string)
			}
			if v, found := updates["phone"]; found {
				u.Phone = v.(string)
			}
			if v, found := updates["address"]; found {
				u.Address = v.(string)
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func TestUserListPagination(t *testing.T) {
	repo := &fakeUserRepo{}
	service := NewUserService(repo)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := service.Create(ctx, UserInput{
			Email: fmt.Sprintf("user%d@example.com", i),
			Name:  fmt.Sprintf("User %d", i),
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := service.List(ctx, 2, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 25 {
		t.Errorf("total = %d, want 25", page.Total)
	}
	if len(page.Users) != 10 {
		t.Errorf("page size = %d, want 10", len(page.Users))
	}
	if page.Page != 2 || page.Limit != 10 {
		t.Errorf("page meta = %d/%d", page.Page, page.Limit)
	}

	// out-of-range values snap to defaults
	page, err = service.List(ctx, 0, 1000)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Errorf("defaults not applied: %d/%d", page.Page, page.Limit)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	service := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	if _, err := service.Create(ctx, UserInput{Email: "jess@example.com", Name: "Jess"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := service.Create(ctx, UserInput{Email: "jess@example.com", Name: "Other"})
	apperr, isAppErr := apperrors.From(err)
	if !isAppErr || apperr.StatusCode != 400 {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUserEmailAvailability(t *testing.T) {
	service := NewUserService(&fakeUserRepo{})
	ctx := context.Background()

	available, err := service.IsEmailAvailable(ctx, "jess@example.com")
	if err != nil || !available {
		t.Fatalf("fresh email should be available, got %v %v", available, err)
	}

	if _, err := service.Create(ctx, UserInput{Email: "jess@example.com", Name: "Jess"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	available, err = service.IsEmailAvailable(ctx, "jess@example.com")
	if err != nil || available {
		t.Fatalf("taken email should not be available, got %v %v", available, err)
	}
}
