package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/proj-cli/proj/internal/registry"
)

func TestDelete_DefaultIsProtected(t *testing.T) {
	eng, store, _, _ := newTestEngine(t)
	seedTwoProjects(t, store)
	ctx := context.Background()

	tests := []struct {
		name string
		arg  string
	}{
		{"explicit", "default"},
		{"case variant", "DEFAULT"},
		{"implicit via active", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Delete(ctx, tt.arg)
			if !errors.Is(err, ErrCannotDeleteDefault) {
				t.Errorf("Delete(%q) = %v, want ErrCannotDeleteDefault", tt.arg, err)
			}
		})
	}
}

func TestDelete_ActiveFallsBackToDefault(t *testing.T) {
	eng, store, _, _ := newTestEngine(t)
	store.seed(t, &registry.Registry{
		Projects: []registry.Project{
			{Name: "default", OpenedFiles: []string{}, ActiveDir: "/home/user"},
			{Name: "demo", OpenedFiles: []string{"a.txt", "b.txt"}, ActiveDir: "/src/demo"},
		},
		ActiveIndex: 1,
	})

	result, err := eng.Delete(context.Background(), "demo")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !result.WasActive || result.NewActive != "default" {
		t.Errorf("unexpected result: %+v", result)
	}

	reg := store.persisted(t)
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"default"}) {
		t.Errorf("expected only default left, got %v", got)
	}
	if reg.ActiveIndex != 0 {
		t.Errorf("expected default active, got index %d", reg.ActiveIndex)
	}
}

func TestDelete_NonActiveKeepsActiveProject(t *testing.T) {
	eng, store, _, _ := newTestEngine(t)
	store.seed(t, &registry.Registry{
		Projects: []registry.Project{
			{Name: "default", OpenedFiles: []string{}, ActiveDir: "/home/user"},
			{Name: "a", OpenedFiles: []string{}, ActiveDir: "/src/a"},
			{Name: "b", OpenedFiles: []string{}, ActiveDir: "/src/b"},
		},
		ActiveIndex: 2,
	})

	result, err := eng.Delete(context.Background(), "a")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if result.WasActive || result.NewActive != "b" {
		t.Errorf("unexpected result: %+v", result)
	}

	// b shifted down a slot but stays active
	reg := store.persisted(t)
	if reg.ActiveIndex != 1 || reg.CurrentName() != "b" {
		t.Errorf("expected b active at index 1, got %q at %d", reg.CurrentName(), reg.ActiveIndex)
	}
}

func TestDelete_Unknown(t *testing.T) {
	eng, _, _, _ := newTestEngine(t)

	_, err := eng.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrUnknownProject) {
		t.Errorf("expected ErrUnknownProject, got %v", err)
	}
}

func TestDelete_ExportsNames(t *testing.T) {
	eng, store, _, exporter := newTestEngine(t)
	seedTwoProjects(t, store)

	if _, err := eng.Delete(context.Background(), "demo"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !reflect.DeepEqual(exporter.names, []string{"default"}) {
		t.Errorf("expected updated name list exported, got %v", exporter.names)
	}
}

func TestRename_ActiveDefault(t *testing.T) {
	eng, store, _, _ := newTestEngine(t)
	ctx := context.Background()

	result, err := eng.Rename(ctx, "", "lib")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if result.OldName != "default" || result.NewName != "lib" {
		t.Errorf("unexpected result: %+v", result)
	}

	// Deletion protection covers the name, not the slot: after the rename
	// "default" no longer resolves
	if _, err := eng.Show(ctx, "default"); !errors.Is(err, ErrUnknownProject) {
		t.Errorf("expected default to no longer resolve, got %v", err)
	}
	if got := store.persisted(t).CurrentName(); got != "lib" {
		t.Errorf("expected active project lib, got %q", got)
	}
}

func TestRename_Explicit(t *testing.T) {
	eng, store, _, exporter := newTestEngine(t)
	seedTwoProjects(t, store)

	result, err := eng.Rename(context.Background(), "DEMO", "web:api")
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if result.OldName != "demo" {
		t.Errorf("expected stored casing in result, got %q", result.OldName)
	}

	reg := store.persisted(t)
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"default", "web:api"}) {
		t.Errorf("unexpected names: %v", got)
	}
	if !reflect.DeepEqual(exporter.names, []string{"default", "web:api"}) {
		t.Errorf("expected new name list exported, got %v", exporter.names)
	}
}

func TestRename_RequiresNewName(t *testing.T) {
	eng, _, _, _ := newTestEngine(t)

	_, err := eng.Rename(context.Background(), "default", "")
	if !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("expected ErrInvalidArguments, got %v", err)
	}
}

func TestRename_Unknown(t *testing.T) {
	eng, _, _, _ := newTestEngine(t)

	_, err := eng.Rename(context.Background(), "missing", "other")
	if !errors.Is(err, ErrUnknownProject) {
		t.Errorf("expected ErrUnknownProject, got %v", err)
	}
}

func TestRename_CollisionIsPermitted(t *testing.T) {
	eng, store, _, _ := newTestEngine(t)
	seedTwoProjects(t, store)

	// Colliding renames are not rejected; resolution finds the first match
	if _, err := eng.Rename(context.Background(), "demo", "default"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	reg := store.persisted(t)
	if got := reg.Names(); !reflect.DeepEqual(got, []string{"default", "default"}) {
		t.Errorf("unexpected names: %v", got)
	}
}
