package service

import (
	"context"
	"fmt"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubBookRepo struct {
	seq   int
	books map[string]*domain.Book
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{books: make(map[string]*domain.Book)}
}

func (r *stubBookRepo) FindByID(_ context.Context, id string) (*domain.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookRepo) FindByTitle(_ context.Context, title string) (*domain.Book, error) {
	for _, b := range r.books {
		if b.Title == title {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBookNotFound
}

func (r *stubBookRepo) List(_ context.Context, activeOnly bool) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(r.books))
	for _, b := range r.books {
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	for _, b := range r.books {
		if b.Title == book.Title {
			return nil, domain.ErrBookTitleTaken
		}
	}
	r.seq++
	clone := *book
	clone.ID = fmt.Sprintf("book_%d", r.seq)
	r.books[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookRepo) Update(_ context.Context, book *domain.Book) error {
	if _, ok := r.books[book.ID]; !ok {
		return domain.ErrBookNotFound
	}
	clone := *book
	r.books[book.ID] = &clone
	return nil
}

func (r *stubBookRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.books)), nil
}

type stubCategoryRepo struct {
	seq        int
	categories map[string]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) List(_ context.Context, activeOnly bool) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, domain.ErrCategoryNameTaken
		}
	}
	r.seq++
	clone := *category
	clone.ID = fmt.Sprintf("cat_%d", r.seq)
	r.categories[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

type stubOrderRepo struct {
	seq    int
	orders map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if o.IsActive {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByEmail(_ context.Context, email string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.Email == email && o.IsActive {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.seq++
	clone := *order
	clone.ID = fmt.Sprintf("order_%d", r.seq)
	r.orders[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *domain.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *stubOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *stubOrderRepo) TotalRevenue(_ context.Context) (float64, error) {
	var sum float64
	for _, o := range r.orders {
		sum += o.TotalPrice
	}
	return sum, nil
}

type stubReplayStore struct {
	keys map[string]string
}

func newStubReplayStore() *stubReplayStore {
	return &stubReplayStore{keys: make(map[string]string)}
}

func (s *stubReplayStore) Lookup(_ context.Context, key string) (string, bool, error) {
	id, ok := s.keys[key]
	return id, ok, nil
}

func (s *stubReplayStore) Remember(_ context.Context, key, orderID string) error {
	s.keys[key] = orderID
	return nil
}
