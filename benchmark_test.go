package databind_test

import (
	"strconv"
	"testing"

	"github.com/ygrebnov/databind"
	"github.com/ygrebnov/databind/controls"
)

// benchRegistry binds n labels to Name and n two-way text fields to Email.
func benchRegistry(n int) (*databind.Registry[User], *controls.TextField, []*controls.Label) {
	r := databind.New(databind.WithModel(randomUser()))
	labels := make([]*controls.Label, n)
	var first *controls.TextField
	for i := range n {
		labels[i] = controls.NewLabel()
		f := controls.NewTextField(i + 1)
		if first == nil {
			first = f
		}
		r.Bind(databind.To(userName, labels[i]), databind.To(userEmail, labels[i]), databind.Sync(userEmail, f))
	}
	return r, first, labels
}

func BenchmarkUpdate(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			r, _, labels := benchRegistry(n)
			v := ptr("value")
			b.ReportAllocs()
			for b.Loop() {
				databind.Update(r, userName, v)
			}
			_ = labels
		})
	}
}

func BenchmarkControlChanged(b *testing.B) {
	for _, n := range []int{1, 10, 100} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			r, field, labels := benchRegistry(n)
			field.SetText("typed@example.com")
			b.ReportAllocs()
			for b.Loop() {
				r.ControlChanged(field.Tag())
			}
			_ = labels
		})
	}
}

func BenchmarkLookupField(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := databind.LookupField[User, *string]("Address.Line1"); err != nil {
			b.Fatal(err)
		}
	}
}
