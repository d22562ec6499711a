package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/researchsphere/hub-api/internal/core/domain"
	"github.com/researchsphere/hub-api/internal/core/ports"
)

func TestBookmarkHandler_Add(t *testing.T) {
	h := NewBookmarkHandler(&stubBookmarkService{
		addFn: func(_ context.Context, userID, paperID string) (*domain.Bookmark, error) {
			if userID != "user-1" || paperID != "paper-1" {
				t.Errorf("Add args = %s/%s", userID, paperID)
			}
			return &domain.Bookmark{ID: "b1", UserID: userID, PaperID: paperID, CreatedAt: time.Now()}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/bookmarks/paper-1", "", testIdentity())
	c.SetParamNames("paperId")
	c.SetParamValues("paper-1")

	if err := h.Add(c); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("Add() status = %d, want 201", rec.Code)
	}
}

func TestBookmarkHandler_Add_MissingPaper(t *testing.T) {
	h := NewBookmarkHandler(&stubBookmarkService{
		addFn: func(context.Context, string, string) (*domain.Bookmark, error) {
			return nil, domain.ErrPaperNotFound
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/bookmarks/missing", "", testIdentity())
	c.SetParamNames("paperId")
	c.SetParamValues("missing")

	if err := h.Add(c); !errors.Is(err, domain.ErrPaperNotFound) {
		t.Errorf("Add() error = %v, want ErrPaperNotFound", err)
	}
}

func TestBookmarkHandler_Remove_NotFoundPropagates(t *testing.T) {
	h := NewBookmarkHandler(&stubBookmarkService{
		removeFn: func(context.Context, string, string) error {
			return domain.ErrBookmarkNotFound
		},
	})

	c, _ := newTestContext(t, http.MethodDelete, "/api/bookmarks/paper-1", "", testIdentity())
	c.SetParamNames("paperId")
	c.SetParamValues("paper-1")

	if err := h.Remove(c); !errors.Is(err, domain.ErrBookmarkNotFound) {
		t.Errorf("Remove() error = %v, want ErrBookmarkNotFound", err)
	}
}

func TestBookmarkHandler_List(t *testing.T) {
	h := NewBookmarkHandler(&stubBookmarkService{
		listFn: func(_ context.Context, userID string, limit, offset int) (*ports.BookmarkPage, error) {
			return &ports.BookmarkPage{
				Data: []ports.BookmarkWithPaper{{
					Bookmark: &domain.Bookmark{ID: "b1", UserID: userID, PaperID: "paper-1"},
					Paper:    samplePaper(),
				}},
				Total: 1, Limit: 10, Offset: 0, Pages: 1,
			}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/bookmarks", "", testIdentity())
	if err := h.List(c); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var envelope struct {
		Data struct {
			Data []struct {
				PaperID string `json:"paper_id"`
				Paper   struct {
					Title string `json:"title"`
				} `json:"paper"`
			} `json:"data"`
			Total int64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Total != 1 || len(envelope.Data.Data) != 1 {
		t.Fatalf("List() page = %+v", envelope.Data)
	}
	item := envelope.Data.Data[0]
	if item.PaperID != "paper-1" || item.Paper.Title == "" {
		t.Errorf("List() item = %+v", item)
	}
}

func TestBookmarkHandler_Check(t *testing.T) {
	h := NewBookmarkHandler(&stubBookmarkService{
		isBookmarkedFn: func(context.Context, string, string) (bool, error) {
			return true, nil
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/api/bookmarks/paper-1/check", "", testIdentity())
	c.SetParamNames("paperId")
	c.SetParamValues("paper-1")

	if err := h.Check(c); err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	var envelope struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !envelope.Data["bookmarked"] {
		t.Error("Check() bookmarked = false, want true")
	}
}
