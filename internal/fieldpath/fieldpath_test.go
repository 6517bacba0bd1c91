package fieldpath

import (
	"errors"
	"reflect"
	"testing"

	dberrors "github.com/ygrebnov/databind/errors"
)

type address struct {
	Line1 *string
	Zip   int
}

type user struct {
	Name    string
	Home    address
	Work    *address
	private int //nolint:unused // must not resolve
}

func TestResolve(t *testing.T) {
	ut := reflect.TypeOf(user{})

	tests := []struct {
		name     string
		root     reflect.Type
		path     string
		wantType reflect.Type
		wantErr  error
	}{
		{"top-level", ut, "Name", reflect.TypeOf(""), nil},
		{"nested struct", ut, "Home.Zip", reflect.TypeOf(0), nil},
		{"through pointer", ut, "Work.Line1", reflect.TypeOf((*string)(nil)), nil},
		{"missing", ut, "Email", nil, dberrors.ErrFieldNotFound},
		{"unexported", ut, "private", nil, dberrors.ErrFieldNotFound},
		{"into scalar", ut, "Name.Length", nil, dberrors.ErrFieldNotFound},
		{"empty path", ut, "", nil, dberrors.ErrFieldNotFound},
		{"non-struct root", reflect.TypeOf(0), "X", nil, dberrors.ErrNotStruct},
		{"nil root", nil, "X", nil, dberrors.ErrNotStruct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(tt.root, tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) expected %v, got %v", tt.path, tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.path, err)
			}
			if p.Type() != tt.wantType {
				t.Fatalf("Resolve(%q) type = %v, want %v", tt.path, p.Type(), tt.wantType)
			}
			if p.Name() != tt.path || p.Root() != tt.root {
				t.Fatalf("Resolve(%q) lost name or root", tt.path)
			}
		})
	}
}

func TestPath_GetSet(t *testing.T) {
	ut := reflect.TypeOf(user{})

	t.Run("nested value", func(t *testing.T) {
		p, err := Resolve(ut, "Home.Zip")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		u := user{}
		p.Set(reflect.ValueOf(&u).Elem(), reflect.ValueOf(1010))
		if u.Home.Zip != 1010 {
			t.Fatalf("Set did not write: %+v", u)
		}
		if got := p.Get(reflect.ValueOf(u)).Interface(); got != 1010 {
			t.Fatalf("Get = %v, want 1010", got)
		}
	})

	t.Run("nil pointer on read and write", func(t *testing.T) {
		p, err := Resolve(ut, "Work.Zip")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		u := user{}
		if v := p.Get(reflect.ValueOf(u)); v.IsValid() {
			t.Fatalf("Get through nil pointer should be invalid, got %v", v)
		}
		p.Set(reflect.ValueOf(&u).Elem(), reflect.ValueOf(42))
		if u.Work == nil || u.Work.Zip != 42 {
			t.Fatalf("Set should allocate the intermediate pointer: %+v", u.Work)
		}
	})
}
