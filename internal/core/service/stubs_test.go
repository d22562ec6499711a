package service

import (
	"context"
	"fmt"
	"time"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
)

// In-memory fakes backing the service tests. They reproduce the repository
// contracts (not-found sentinels, owner-filtered mutations, duplicate emails)
// without a running database.

type fakeUserRepo struct {
	users  []*domain.User
	nextID int
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	f.nextID++
	stored := *user
	stored.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users = append(f.users, &stored)
	return &stored, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id string, name, email string) (*domain.User, error) {
	user, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	user, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*domain.User, int64, error) {
	total := int64(len(f.users))
	if offset >= len(f.users) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(f.users) {
		end = len(f.users)
	}
	return f.users[offset:end], total, nil
}

type fakePaperRepo struct {
	papers []*domain.Paper
	nextID int
}

func (f *fakePaperRepo) Create(_ context.Context, paper *domain.Paper) (*domain.Paper, error) {
	f.nextID++
	stored := *paper
	stored.ID = fmt.Sprintf("paper-%d", f.nextID)
	f.papers = append(f.papers, &stored)
	return &stored, nil
}

func (f *fakePaperRepo) FindByID(_ context.Context, id string) (*domain.Paper, error) {
	for _, p := range f.papers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPaperNotFound
}

func (f *fakePaperRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Paper, error) {
	var out []*domain.Paper
	for _, p := range f.papers {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakePaperRepo) Search(_ context.Context, filter ports.PaperFilter) ([]*domain.Paper, int64, error) {
	var matched []*domain.Paper
	for _, p := range f.papers {
		if filter.OwnerID != "" && p.Owner.ID != filter.OwnerID {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		matched = append(matched, p)
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (f *fakePaperRepo) Update(ctx context.Context, id, ownerID string, update ports.UpdatePaperInput) (*domain.Paper, error) {
	paper, err := f.FindByID(ctx, id)
	if err != nil || paper.Owner.ID != ownerID {
		return nil, domain.ErrPaperNotFound
	}
	if update.Title != nil {
		paper.Title = *update.Title
	}
	if update.Content != nil {
		paper.Content = *update.Content
	}
	if update.Tags != nil {
		paper.Tags = update.Tags
	}
	paper.UpdatedAt = time.Now().UTC()
	return paper, nil
}

func (f *fakePaperRepo) Delete(_ context.Context, id, ownerID string) error {
	for i, p := range f.papers {
		if p.ID == id && p.Owner.ID == ownerID {
			f.papers = append(f.papers[:i], f.papers[i+1:]...)
			return nil
		}
	}
	return domain.ErrPaperNotFound
}

type fakeBookmarkRepo struct {
	bookmarks []*domain.Bookmark
	nextID    int
}

func (f *fakeBookmarkRepo) Upsert(_ context.Context, userID, paperID string) (*domain.Bookmark, error) {
	for _, b := range f.bookmarks {
		if b.UserID == userID && b.PaperID == paperID {
			return b, nil
		}
	}
	f.nextID++
	b := &domain.Bookmark{
		ID:        fmt.Sprintf("bookmark-%d", f.nextID),
		UserID:    userID,
		PaperID:   paperID,
		CreatedAt: time.Now().UTC(),
	}
	f.bookmarks = append(f.bookmarks, b)
	return b, nil
}

func (f *fakeBookmarkRepo) Delete(_ context.Context, userID, paperID string) error {
	for i, b := range f.bookmarks {
		if b.UserID == userID && b.PaperID == paperID {
			f.bookmarks = append(f.bookmarks[:i], f.bookmarks[i+1:]...)
			return nil
		}
	}
	return domain.ErrBookmarkNotFound
}

func (f *fakeBookmarkRepo) DeleteAllForPaper(_ context.Context, paperID string) error {
	kept := f.bookmarks[:0]
	for _, b := range f.bookmarks {
		if b.PaperID != paperID {
			kept = append(kept, b)
		}
	}
	f.bookmarks = kept
	return nil
}

func (f *fakeBookmarkRepo) Exists(_ context.Context, userID, paperID string) (bool, error) {
	for _, b := range f.bookmarks {
		if b.UserID == userID && b.PaperID == paperID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookmarkRepo) List(_ context.Context, userID string, limit, offset int) ([]*domain.Bookmark, int64, error) {
	var matched []*domain.Bookmark
	for _, b := range f.bookmarks {
		if b.UserID == userID {
			matched = append(matched, b)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type fakeViewCounter struct {
	counts map[string]int64
	err    error
}

func (f *fakeViewCounter) Increment(_ context.Context, paperID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[paperID]++
	return f.counts[paperID], nil
}

func (f *fakeViewCounter) Get(_ context.Context, paperID string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[paperID], nil
}
