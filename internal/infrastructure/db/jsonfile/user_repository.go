package jsonfile

import (
	"context"
	"errors"
	"os"

	"github.com/Hritesh-panda/rolebasedauthorization/internal/core/domain"
)

const userDocName = "users"

// userRecord is the persisted account shape. It exists apart from
// domain.User so the plaintext password can be written to the file while the
// domain type keeps it out of every response.
type userRecord struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userDocument matches the on-disk layout: { user: [...], count }.
// count is best-effort bookkeeping, recomputed on every save but never
// trusted for iteration.
type userDocument struct {
	User  []userRecord `json:"user"`
	Count int          `json:"count,omitempty"`
}

// UserRepository persists accounts in one JSON document shared by the
// manager and seller screens.
type UserRepository struct {
	store store
}

func NewUserRepository(path string) *UserRepository {
	return &UserRepository{store: store{path: path, name: userDocName}}
}

// load reads the document. Unlike the product store, a missing file is not
// an error: the store starts empty and the file appears on first save.
func (r *UserRepository) load() (*userDocument, error) {
	var doc userDocument
	if err := r.store.read(&doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &userDocument{User: []userRecord{}}, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *UserRepository) save(doc *userDocument) error {
	doc.Count = len(doc.User)
	return r.store.write(doc)
}

// Ping reports whether the backing document is readable. A missing file is
// fine here; it will be created on first write.
func (r *UserRepository) Ping(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, err := r.load()
	return err
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(doc.User))
	for _, rec := range doc.User {
		out = append(out, toUser(rec))
	}
	return out, nil
}

func (r *UserRepository) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(doc.User))
	for _, rec := range doc.User {
		if rec.Role == role {
			out = append(out, toUser(rec))
		}
	}
	return out, nil
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, rec := range doc.User {
		if rec.Username == user.Username {
			return nil, domain.ErrUserExists
		}
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}

	user.ID = maxID + 1
	doc.User = append(doc.User, userRecord{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
		Role:     user.Role,
	})

	if err := r.save(doc); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) DeleteByID(_ context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	for i, rec := range doc.User {
		if rec.ID == id {
			doc.User = append(doc.User[:i], doc.User[i+1:]...)
			return r.save(doc)
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) FindByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range doc.User {
		if rec.Username == username && rec.Password == password {
			u := toUser(rec)
			return &u, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func toUser(rec userRecord) domain.User {
	return domain.User{
		ID:       rec.ID,
		Username: rec.Username,
		Password: rec.Password,
		Role:     rec.Role,
	}
}
