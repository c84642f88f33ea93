package services

import (
	"errors"
	"testing"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

func ownedTask(owner uint) *model.Task {
	return &model.Task{ID: 3, Title: "t", Description: "d", Status: "open", UserID: &owner}
}

func TestAuthorizeMutation(t *testing.T) {
	cases := []struct {
		name   string
		task   *model.Task
		caller uint
		want   error
	}{
		{"owner", ownedTask(1), 1, nil},
		{"stranger", ownedTask(1), 2, apperrors.ErrForbidden},
		{"missing", nil, 1, apperrors.ErrTaskNotFound},
		{"no owner", &model.Task{ID: 9, Status: "open"}, 1, apperrors.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := AuthorizeMutation(tc.task, tc.caller)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestApplyPartialUpdate_EmptyPatchIsNoop(t *testing.T) {
	task := ownedTask(1)
	before := *task

	if err := ApplyPartialUpdate(task, map[string]any{}); err != nil {
		t.Fatalf("expected empty patch to apply, got %v", err)
	}
	if *task != before {
		t.Errorf("task changed by empty patch: %+v", task)
	}
}

func TestApplyPartialUpdate_UnknownFieldRejectsWholePatch(t *testing.T) {
	task := ownedTask(1)
	before := *task

	err := ApplyPartialUpdate(task, map[string]any{"status": "done", "hacker_field": 1})
	if !errors.Is(err, apperrors.ErrInvalidPatch) {
		t.Fatalf("expected ErrInvalidPatch, got %v", err)
	}
	if *task != before {
		t.Errorf("rejected patch mutated task: %+v", task)
	}
}

func TestApplyPartialUpdate_IdentityFieldsAreImmutable(t *testing.T) {
	for _, key := range []string{"id", "user_id"} {
		task := ownedTask(1)
		before := *task

		err := ApplyPartialUpdate(task, map[string]any{"title": "x", key: "5"})
		if !errors.Is(err, apperrors.ErrInvalidPatch) {
			t.Errorf("%s: expected ErrInvalidPatch, got %v", key, err)
		}
		if *task != before {
			t.Errorf("%s: rejected patch mutated task", key)
		}
	}
}

func TestApplyPartialUpdate_InvalidValuesRejected(t *testing.T) {
	patches := []map[string]any{
		{"title": "x", "status": ""},
		{"title": "x", "description": 12.0},
		{"status": nil},
	}

	for _, patch := range patches {
		task := ownedTask(1)
		before := *task
		if err := ApplyPartialUpdate(task, patch); !errors.Is(err, apperrors.ErrInvalidPatch) {
			t.Errorf("patch %v: expected ErrInvalidPatch, got %v", patch, err)
		}
		if *task != before {
			t.Errorf("patch %v mutated task", patch)
		}
	}
}

func TestApplyPartialUpdate_TitleOnly(t *testing.T) {
	task := ownedTask(1)
	before := *task

	if err := ApplyPartialUpdate(task, map[string]any{"title": "x"}); err != nil {
		t.Fatalf("expected patch to apply, got %v", err)
	}

	if task.Title != "x" {
		t.Errorf("expected title x, got %s", task.Title)
	}
	before.Title = "x"
	if *task != before {
		t.Errorf("unexpected change beyond title: %+v", task)
	}
}

func TestApplyPartialUpdate_AllFields(t *testing.T) {
	task := ownedTask(1)

	err := ApplyPartialUpdate(task, map[string]any{
		"title":       "new title",
		"description": "",
		"status":      "closed",
	})
	if err != nil {
		t.Fatalf("expected patch to apply, got %v", err)
	}
	if task.Title != "new title" || task.Description != "" || task.Status != "closed" {
		t.Errorf("unexpected task: %+v", task)
	}
	if task.ID != 3 || !task.IsOwnedBy(1) {
		t.Errorf("identity fields changed: %+v", task)
	}
}
