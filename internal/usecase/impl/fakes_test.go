package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
)

// In-memory fakes standing in for the GORM-backed repositories. They keep
// the usecase tests free of a database while preserving the repositories'
// error contracts.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	return r.findBy(func(u *entity.User) bool {
		return u.Username == identifier || u.Email == identifier
	})
}

func (r *fakeUserRepo) findBy(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if match(user) {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

type fakeTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, tasks: make(map[int64]*entity.Task)}
}

func (r *fakeTaskRepo) FindByID(_ context.Context, ownerID, id int64) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, repository.ErrTaskNotFound
	}
	copied := *task

	return &copied, nil
}

func (r *fakeTaskRepo) FindByOwner(_ context.Context, ownerID int64, filter repository.TaskFilter) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*entity.Task
	for _, task := range r.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		copied := *task
		owned = append(owned, &copied)
	}
	// Newest first, matching the repository contract.
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID > owned[j].ID
		}

		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if filter.Skip >= len(owned) {
		return nil, nil
	}
	owned = owned[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < len(owned) {
		owned = owned[:filter.Limit]
	}

	return owned, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	copied := *task
	r.tasks[task.ID] = &copied

	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return repository.ErrTaskNotFound
	}
	task.UpdatedAt = time.Now()
	copied := *task
	r.tasks[task.ID] = &copied

	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, ownerID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)

	return nil
}

func (r *fakeTaskRepo) CountByStatus(_ context.Context, ownerID int64) (*repository.TaskStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &repository.TaskStats{ByStatus: make(map[entity.TaskStatus]int64)}
	for _, status := range entity.AllTaskStatuses() {
		stats.ByStatus[status] = 0
	}
	for _, task := range r.tasks {
		if task.OwnerID != ownerID {
			continue
		}
		stats.Total++
		stats.ByStatus[task.Status]++
	}

	return stats, nil
}

// fakeTxManager runs the function directly against the live fakes; the
// in-memory repositories have no transactional behavior to emulate.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeRepoFactory struct {
	userRepo *fakeUserRepo
	taskRepo *fakeTaskRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }
func (f *fakeRepoFactory) TaskRepo() repository.TaskRepository { return f.taskRepo }

// fakeHasher is a deterministic stand-in for bcrypt. It records how many
// comparisons ran, so tests can assert the dummy compare on unknown
// identifiers.
type fakeHasher struct {
	mu     sync.Mutex
	checks int
}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	h.mu.Lock()
	h.checks++
	h.mu.Unlock()

	return hash == "hashed:"+password
}

func (h *fakeHasher) checkCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.checks
}

// fakePolicy accepts everything unless a rejection error is set.
type fakePolicy struct {
	reject error
}

func (p *fakePolicy) Validate(string) error { return p.reject }

// fakeTokenService issues a fixed token and records the last subject.
type fakeTokenService struct {
	token        string
	ttl          time.Duration
	issueErr     error
	lastUserID   int64
	lastUsername string
}

func (s *fakeTokenService) Issue(userID int64, username string) (string, time.Duration, error) {
	if s.issueErr != nil {
		return "", 0, s.issueErr
	}
	s.lastUserID = userID
	s.lastUsername = username

	return s.token, s.ttl, nil
}

func (s *fakeTokenService) Verify(string) (*service.Claims, error) {
	panic("not used by usecase tests")
}

func (s *fakeTokenService) AccessTokenTTL() time.Duration { return s.ttl }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
