package bucket

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeForcesAllFirst(t *testing.T) {
	got := Normalize([]string{"work", "all", "", "work", "personal"})
	want := []string{"all", "work", "personal"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("  "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if err := ValidateName("all"); !errors.Is(err, ErrReserved) {
		t.Fatalf("expected ErrReserved, got %v", err)
	}
	if err := ValidateName("work"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnmarshalListLegacyObjects(t *testing.T) {
	got, err := UnmarshalList([]byte(`[{"name":"all"},{"name":"links","type":"generic"}]`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"all", "links"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUnmarshalListEmptyUsesDefaults(t *testing.T) {
	got, err := UnmarshalList(nil)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Fatalf("expected defaults, got %v", got)
	}
}

func TestUnmarshalListCorrupt(t *testing.T) {
	if _, err := UnmarshalList([]byte(`{"oops"`)); err == nil {
		t.Fatal("expected error for corrupt data")
	}
}
