package application_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/userhub/internal/application"
	"github.com/yudhapratama/userhub/internal/domain/entity"
	"github.com/yudhapratama/userhub/internal/domain/event"
	"github.com/yudhapratama/userhub/internal/domain/repository"
	"github.com/yudhapratama/userhub/internal/domain/service"
)

type memoryUserRepository struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int
	now    time.Time
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		users: make(map[string]*entity.User),
		now:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memoryUserRepository) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memoryUserRepository) Create(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	m.nextID++
	u.ID = fmt.Sprintf("u-%03d", m.nextID)
	t := m.tick()
	u.CreatedAt = t
	u.UpdatedAt = t
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memoryUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryUserRepository) Update(ctx context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	u.CreatedAt = stored.CreatedAt
	u.UpdatedAt = m.tick()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memoryUserRepository) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memoryUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func statusPtr(s entity.Status) *entity.Status { return &s }

// newTestUserService wires the full command path over an in-memory store
// and a real dispatcher, so the executor/domain/event interplay is the
// same as in production.
func newTestUserService(t *testing.T) (*application.UserService, *memoryUserRepository, *event.Dispatcher) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := newMemoryUserRepository()
	dispatcher := event.NewDispatcher(logger)
	domain := service.NewUserDomainService(repo, dispatcher, logger)
	executor := application.NewRegisterUserExecutor(domain, logger)
	return application.NewUserService(repo, executor, logger), repo, dispatcher
}

func TestCreateUser_DelegatesToExecutor(t *testing.T) {
	svc, _, d := newTestUserService(t)
	ctx := context.Background()

	var mu sync.Mutex
	var received []event.UserCreated
	d.Subscribe(event.KindUserCreated, func(e event.Event) error {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, e.(event.UserCreated))
		return nil
	})

	u, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice", Email: "a@x.com", Phone: "111"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	d.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].UserID != u.ID {
		t.Fatalf("event user id %q != created id %q", received[0].UserID, u.ID)
	}
}

func TestCreateUser_FailingSubscriberDoesNotAffectResult(t *testing.T) {
	svc, repo, d := newTestUserService(t)
	ctx := context.Background()

	d.Subscribe(event.KindUserCreated, func(e event.Event) error {
		panic("notification backend down")
	})

	u, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("CreateUser must succeed despite failing subscriber: %v", err)
	}
	d.Wait()

	if _, err := repo.FindByID(ctx, u.ID); err != nil {
		t.Fatalf("committed user must remain visible: %v", err)
	}
}

func TestUpdateUser_PartialMerge(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice", Email: "a@x.com", Phone: "111"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	updated, err := svc.UpdateUser(ctx, application.UpdateUserCommand{ID: u.ID, Email: strPtr("new@x.com")})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Email != "new@x.com" {
		t.Fatalf("email not updated: %q", updated.Email)
	}
	if updated.Phone != "111" {
		t.Fatalf("phone must be untouched, got %q", updated.Phone)
	}
	if updated.Status != entity.StatusEnabled {
		t.Fatalf("status must be untouched, got %q", updated.Status)
	}
	if updated.Username != "alice" {
		t.Fatalf("username is immutable, got %q", updated.Username)
	}
	if !updated.UpdatedAt.After(u.UpdatedAt) {
		t.Fatal("updated_at must strictly increase")
	}
}

func TestUpdateUser_SetFieldToZeroValueClears(t *testing.T) {
	// A pointer to the empty string is a deliberate clear, not an
	// omitted field.
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice", Email: "a@x.com", Phone: "111"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	updated, err := svc.UpdateUser(ctx, application.UpdateUserCommand{ID: u.ID, Phone: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Phone != "" {
		t.Fatalf("explicitly set empty phone must clear it, got %q", updated.Phone)
	}
	if updated.Email != "a@x.com" {
		t.Fatalf("email must be untouched, got %q", updated.Email)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.UpdateUser(context.Background(), application.UpdateUserCommand{ID: "missing", Email: strPtr("x@x.com")})
	if !errors.Is(err, application.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByID_Idempotent(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	first, err := svc.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	second, err := svc.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if *first != *second {
		t.Fatalf("repeated reads differ: %+v vs %+v", first, second)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := svc.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := svc.GetUserByID(ctx, u.ID); !errors.Is(err, application.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}

	if err := svc.DeleteUser(ctx, u.ID); !errors.Is(err, application.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for missing id, got %v", err)
	}
}

func TestGetAllUsers(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "carol"} {
		if _, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: name}); err != nil {
			t.Fatalf("CreateUser(%s): %v", name, err)
		}
	}

	users, err := svc.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
}

// TestRegistrationLifecycle walks the full scenario: register, duplicate
// rejection, partial status update, delete.
func TestRegistrationLifecycle(t *testing.T) {
	svc, _, d := newTestUserService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice", Email: "a@x.com", Phone: "111"})
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if u.Status != entity.StatusEnabled || u.ID == "" || u.CreatedAt.IsZero() {
		t.Fatalf("unexpected created entity: %+v", u)
	}

	if _, err := svc.CreateUser(ctx, application.CreateUserCommand{Username: "alice", Email: "b@y.com"}); !errors.Is(err, application.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	updated, err := svc.UpdateUser(ctx, application.UpdateUserCommand{ID: u.ID, Status: statusPtr(entity.StatusDisabled)})
	if err != nil {
		t.Fatalf("disable alice: %v", err)
	}
	if updated.Email != "a@x.com" || updated.Phone != "111" || updated.Username != "alice" {
		t.Fatalf("status-only update touched other fields: %+v", updated)
	}
	if updated.Status != entity.StatusDisabled {
		t.Fatalf("expected disabled, got %q", updated.Status)
	}

	if err := svc.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete alice: %v", err)
	}
	if _, err := svc.GetUserByID(ctx, u.ID); !errors.Is(err, application.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	d.Wait()
}
