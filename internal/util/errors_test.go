package util_test

import (
	"errors"
	"gamerating/internal/util"
	"testing"
)

func TestConcatErrors(t *testing.T) {
	if err := util.ConcatErrors(nil); err != nil {
		t.Errorf("expected nil, got %s", err)
	}

	if err := util.ConcatErrors([]error{nil, nil}); err != nil {
		t.Errorf("expected nil, got %s", err)
	}

	a, b := errors.New("a"), errors.New("b")
	err := util.ConcatErrors([]error{a, nil, b})
	if err == nil || err.Error() != "a; b" {
		t.Errorf("expected 'a; b', got %v", err)
	}
	if !errors.Is(err, a) || !errors.Is(err, b) {
		t.Error("expected the merged errors to be matched")
	}

	if err := util.ConcatErrors([]error{nil, a}); err != a {
		t.Errorf("expected a single error to be returned as is, got %v", err)
	}
}

func TestNewID(t *testing.T) {
	a, b := util.NewID(), util.NewID()
	if a == b {
		t.Fatalf("expected distinct IDs, got %s twice", a)
	}

	if len(a) != 36 {
		t.Errorf("expected a canonical UUID, got %q", a)
	}
}
