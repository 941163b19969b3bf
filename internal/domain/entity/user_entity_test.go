package entity_test

import (
	"testing"

	"github.com/yudhapratama/userhub/internal/domain/entity"
)

func TestStatusTransitions(t *testing.T) {
	u := &entity.User{Username: "alice"}

	u.Enable()
	if !u.IsEnabled() {
		t.Fatal("expected enabled")
	}
	u.Disable()
	if u.IsEnabled() {
		t.Fatal("expected disabled")
	}
	if u.Status != entity.StatusDisabled {
		t.Fatalf("unexpected status %q", u.Status)
	}
}

func TestStatusValid(t *testing.T) {
	if !entity.StatusEnabled.Valid() || !entity.StatusDisabled.Valid() {
		t.Fatal("known statuses must be valid")
	}
	if entity.Status("archived").Valid() {
		t.Fatal("unknown status must be invalid")
	}
}
