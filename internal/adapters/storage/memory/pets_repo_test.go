package memory

import (
	"context"
	"errors"
	"testing"

	"pet-board/internal/domain/pets"
)

func TestCreateGetUpdate(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	p := pets.Pet{ID: "a", Name: "Rex", Likes: []string{"walks"}}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, p); err == nil {
		t.Fatal("expected error on duplicate id")
	}

	got, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Rex" {
		t.Fatalf("unexpected pet: %+v", got)
	}

	p.Name = "Rex II"
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = repo.GetByID(ctx, "a")
	if got.Name != "Rex II" {
		t.Fatalf("update not reflected: %+v", got)
	}
}

func TestNotFound(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, pets.Pet{ID: "missing"}); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}
}

func TestListAll_IDDescending(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	// inserción desordenada a propósito
	for _, id := range []string{"b", "c", "a"} {
		if err := repo.Create(ctx, pets.Pet{ID: id, Name: id}); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	items, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 3 || items[0].ID != "c" || items[1].ID != "b" || items[2].ID != "a" {
		t.Fatalf("unexpected order: %+v", items)
	}
}
