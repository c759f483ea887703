package contact

import (
	"context"
	"testing"

	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/gorm"
)

type fakeMessageRepo struct {
	messages map[int64]*domain.ContactMessage
	logs     []*domain.ContactLog
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: map[int64]*domain.ContactMessage{}}
}

func (r *fakeMessageRepo) CreateWithLog(ctx context.Context, message *domain.ContactMessage, log *domain.ContactLog) error {
	r.messages[message.ID] = message
	log.MessageID = message.ID
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	m, found := r.messages[id]
	if !found {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *fakeMessageRepo) All(ctx context.Context) ([]*domain.ContactMessage, error) {
	out := []*domain.ContactMessage{}
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessageRepo) Unread(ctx context.Context) ([]*domain.ContactMessage, error) {
	out := []*domain.ContactMessage{}
	for _, m := range r.messages {
		if !m.IsRead {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkAsRead(ctx context.Context, id int64) error {
	m, found := r.messages[id]
	if !found {
		return gorm.ErrRecordNotFound
	}
	m.IsRead = true
	return nil
}

func (r *fakeMessageRepo) UpdateStatusWithLog(ctx context.Context, id int64, status string, log *domain.ContactLog) error {
	m, found := r.messages[id]
	if !found {
		return gorm.ErrRecordNotFound
	}
	m.Status = status
	log.MessageID = id
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id int64) error {
	delete(r.messages, id)
	return nil
}

func (r *fakeMessageRepo) Logs(ctx context.Context) ([]*domain.ContactLog, error) {
	return r.logs, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.messages)), nil
}

func (r *fakeMessageRepo) CountUnread(ctx context.Context) (int64, error) {
	var total int64
	for _, m := range r.messages {
		if !m.IsRead {
			total++
		}
	}
	return total, nil
}

func TestCreateWritesSingleAuditEntry(t *testing.T) {
	repo := newFakeMessageRepo()
	service := NewService(repo, nil)

	message, err := service.Create(context.Background(), CreateInput{
		Name:    "Jess",
		Email:   "jess@example.com",
		Message: "Do you ship overseas?",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if message.Status != domain.ContactStatusPending {
		t.Errorf("status = %q, want PENDING", message.Status)
	}
	if message.Subject != "No subject" {
		t.Errorf("subject = %q, want default", message.Subject)
	}
	if len(repo.logs) != 1 {
		t.Fatalf("got %d audit entries, want exactly 1", len(repo.logs))
	}

	log := repo.logs[0]
	if log.Action != domain.ContactLogCreated {
		t.Errorf("action = %q, want %q", log.Action, domain.ContactLogCreated)
	}
	if log.MessageID != message.ID {
		t.Errorf("log message id = %d, want %d", log.MessageID, message.ID)
	}
	var details map[string]string
	if err := jsoniter.UnmarshalFromString(log.Details, &details); err != nil {
		t.Fatalf("details not valid JSON: %v", err)
	}
	if details["subject"] != "No subject" {
		t.Errorf("details subject = %q", details["subject"])
	}
}

func TestCreateValidation(t *testing.T) {
	service := NewService(newFakeMessageRepo(), nil)
	ctx := context.Background()

	cases := []CreateInput{
		{Email: "a@b.com", Message: "hi"},
		{Name: "A", Message: "hi"},
		{Name: "A", Email: "a@b.com"},
		{Name: "A", Email: "not-an-email", Message: "hi"},
	}
	for i, input := range cases {
		_, err := service.Create(ctx, input)
		apperr, isAppErr := apperrors.From(err)
		if !isAppErr || apperr.StatusCode != 400 {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestUpdateStatusAppendsAuditEntry(t *testing.T) {
	repo := newFakeMessageRepo()
	service := NewService(repo, nil)
	ctx := context.Background()

	message, err := service.Create(ctx, CreateInput{
		Name: "Jess", Email: "jess@example.com", Subject: "Shipping", Message: "Hi",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := service.UpdateStatus(ctx, message.ID, domain.ContactStatusDelivered)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != domain.ContactStatusDelivered {
		t.Errorf("status = %q, want DELIVERED", updated.Status)
	}

	if len(repo.logs) != 2 {
		t.Fatalf("got %d audit entries, want 2", len(repo.logs))
	}
	log := repo.logs[1]
	if log.Action != domain.ContactLogStatusChanged {
		t.Errorf("action = %q, want %q", log.Action, domain.ContactLogStatusChanged)
	}
	var details map[string]string
	if err := jsoniter.UnmarshalFromString(log.Details, &details); err != nil {
		t.Fatalf("details not valid JSON: %v", err)
	}
	if details["status"] != domain.ContactStatusDelivered {
		t.Errorf("details status = %q", details["status"])
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeMessageRepo()
	service := NewService(repo, nil)
	ctx := context.Background()

	message, err := service.Create(ctx, CreateInput{
		Name: "Jess", Email: "jess@example.com", Message: "Hi",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = service.UpdateStatus(ctx, message.ID, "SHIPPED")
	apperr, isAppErr := apperrors.From(err)
	if !isAppErr || apperr.StatusCode != 400 {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.logs) != 1 {
		t.Errorf("rejected update must not append an audit entry, got %d", len(repo.logs))
	}
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	repo := newFakeMessageRepo()
	service := NewService(repo, nil)
	ctx := context.Background()

	message, err := service.Create(ctx, CreateInput{
		Name: "Jess", Email: "jess@example.com", Message: "Hi",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		updated, err := service.MarkAsRead(ctx, message.ID)
		if err != nil {
			t.Fatalf("mark read failed on pass %d: %v", i, err)
		}
		if !updated.IsRead {
			t.Fatalf("message still unread on pass %d", i)
		}
	}

	unread, err := service.CountUnread(ctx)
	if err != nil {
		t.Fatalf("count unread failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread = %d, want 0", unread)
	}
}

func TestDeleteRetainsAuditTrail(t *testing.T) {
	repo := newFakeMessageRepo()
	service := NewService(repo, nil)
	ctx := context.Background()

	message, err := service.Create(ctx, CreateInput{
		Name: "Jess", Email: "jess@example.com", Message: "Hi",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.Delete(ctx, message.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	logs, err := service.Logs(ctx)
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("audit trail lost after delete, got %d entries", len(logs))
	}
}
