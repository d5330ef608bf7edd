package types

import (
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
)

func TestListItem_FilterValue(t *testing.T) {
	item := ListItem{
		Title:       "my-pod",
		Description: "namespace: default",
		Target:      Target{Name: "my-pod", Namespace: "default"},
	}

	if item.FilterValue() != "my-pod" {
		t.Errorf("FilterValue() = %s, want %s", item.FilterValue(), "my-pod")
	}
}

func TestPodRecord_HasAge(t *testing.T) {
	rec := PodRecord{Name: "web-1", Namespace: "prod", Phase: corev1.PodRunning}
	if rec.HasAge() {
		t.Error("Expected record without timestamp to have unknown age")
	}

	rec.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !rec.HasAge() {
		t.Error("Expected record with timestamp to have an age")
	}
}

func TestPodRecord_Target(t *testing.T) {
	rec := PodRecord{Name: "web-1", Namespace: "prod"}
	got := rec.Target()

	if got.Name != "web-1" || got.Namespace != "prod" {
		t.Errorf("Target() = %+v, want web-1/prod", got)
	}
	if got.String() != "prod/web-1" {
		t.Errorf("String() = %s, want prod/web-1", got.String())
	}
}

func TestTargetsToListItems(t *testing.T) {
	targets := []Target{
		{Name: "web-1", Namespace: "prod"},
		{Name: "web-2", Namespace: "staging"},
	}

	items := TargetsToListItems(targets)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	if items[0].Title != "web-1" {
		t.Errorf("Expected title web-1, got %s", items[0].Title)
	}
	if items[1].Description != "namespace: staging" {
		t.Errorf("Expected description 'namespace: staging', got %s", items[1].Description)
	}
	if items[1].Target != targets[1] {
		t.Errorf("Expected target %+v, got %+v", targets[1], items[1].Target)
	}
}
