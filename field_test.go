package databind_test

import (
	"errors"
	"testing"

	"github.com/ygrebnov/databind"
)

func TestLookupField(t *testing.T) {
	tests := []struct {
		name    string
		lookup  func() error
		wantErr error
	}{
		{"top-level", func() error { _, err := databind.LookupField[User, *string]("Name"); return err }, nil},
		{"nested", func() error { _, err := databind.LookupField[User, *string]("Address.Line1"); return err }, nil},
		{"interface", func() error { _, err := databind.LookupField[User, any]("Avatar"); return err }, databind.ErrFieldTypeMismatch},
		{"missing", func() error { _, err := databind.LookupField[User, int]("Height"); return err }, databind.ErrFieldNotFound},
		{"missing nested", func() error { _, err := databind.LookupField[User, int]("Address.Zip"); return err }, databind.ErrFieldNotFound},
		{"through non-struct", func() error { _, err := databind.LookupField[User, int]("Age.Years"); return err }, databind.ErrFieldNotFound},
		{"wrong type", func() error { _, err := databind.LookupField[User, string]("Name"); return err }, databind.ErrFieldTypeMismatch},
		{"non-struct model", func() error { _, err := databind.LookupField[int, int]("X"); return err }, databind.ErrNotStruct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFieldOf_Panics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, databind.ErrFieldNotFound) {
			t.Fatalf("expected ErrFieldNotFound panic, got %v", err)
		}
	}()
	databind.FieldOf[User, int]("Nope")
}

func TestField_Identity(t *testing.T) {
	looked, err := databind.LookupField[User, *string]("Name")
	if err != nil {
		t.Fatal(err)
	}
	if looked.Ref() != userName.Ref() {
		t.Fatalf("two lookups of the same field must have the same ref")
	}
	if userName.Ref() == userEmail.Ref() {
		t.Fatalf("different fields share a ref")
	}

	manual := databind.NewField("Name", func(u *User) *string { return u.Name }, func(u *User, v *string) { u.Name = v })
	if manual.Ref() != userName.Ref() {
		t.Fatalf("a hand-written field named like the struct field must target it")
	}

	type other struct{ Name *string }
	if databind.FieldOf[other, *string]("Name").Ref() == userName.Ref() {
		t.Fatalf("fields of different models must differ")
	}

	if got := userLine1.String(); got != "Field(databind_test.User.Address.Line1)" {
		t.Fatalf("String() = %q", got)
	}
	if got := userLine1.Ref().Path(); got != "Address.Line1" {
		t.Fatalf("Path() = %q", got)
	}
}

func TestField_GetSet(t *testing.T) {
	var u User
	if v := userLine1.Get(&u); v != nil {
		t.Fatalf("Get through nil Address = %v", v)
	}
	userLine1.Set(&u, ptr("x"))
	if u.Address == nil || deref(u.Address.Line1) != "x" {
		t.Fatalf("Set did not allocate the intermediate struct")
	}

	if userAvatar.Get(&u) != nil {
		t.Fatalf("nil interface field must read as nil")
	}
	userAvatar.Set(&u, nil)
	if u.Avatar != nil {
		t.Fatalf("Avatar = %v", u.Avatar)
	}

	userAge.Set(&u, 41)
	if userAge.Get(&u) != 41 || !userAge.Writable() {
		t.Fatalf("Age = %d", u.Age)
	}
}

func TestField_ReadOnly(t *testing.T) {
	ro := databind.NewField[User, int]("Years", func(u *User) int { return u.Age }, nil)
	if ro.Writable() {
		t.Fatalf("field without setter reported writable")
	}
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, databind.ErrReadOnlyField) {
			t.Fatalf("expected ErrReadOnlyField panic, got %v", err)
		}
	}()
	ro.Set(&User{}, 1)
}
