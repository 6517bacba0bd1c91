package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ygrebnov/databind"
	"github.com/ygrebnov/databind/internal/config"
	"github.com/ygrebnov/databind/tui"
)

// Profile is the edited model.
type Profile struct {
	Name       string `default:"anonymous"`
	Email      string
	Age        int `default:"18"`
	Newsletter bool
}

var (
	profileName       = databind.FieldOf[Profile, string]("Name")
	profileEmail      = databind.FieldOf[Profile, string]("Email")
	profileAge        = databind.FieldOf[Profile, int]("Age")
	profileNewsletter = databind.FieldOf[Profile, bool]("Newsletter")
)

// Routing tags of the editable controls.
const (
	tagName = iota + 1
	tagEmail
	tagAge
	tagNewsletter
)

type editor struct {
	registry *databind.Registry[Profile]
	form     *tui.Form

	name       *tui.TextInput
	email      *tui.TextInput
	age        *tui.TextInput
	newsletter *tui.Toggle
	greeting   *tui.Label
	status     *tui.Label
}

func profileFromConfig(c config.ProfileConfig) *Profile {
	if c == (config.ProfileConfig{}) {
		return nil
	}
	return &Profile{Name: c.Name, Email: c.Email, Age: c.Age, Newsletter: c.Newsletter}
}

// newEditor binds a form to a registry. A nil initial profile starts from the defaults.
func newEditor(initial *Profile, logger *slog.Logger) *editor {
	opts := []databind.Option[Profile]{databind.WithDefaults[Profile](), databind.WithLogger[Profile](logger)}
	if initial != nil {
		opts = append(opts, databind.WithModel(*initial))
	}

	ed := &editor{
		registry:   databind.New(opts...),
		name:       tui.NewTextInput(tagName, "your name"),
		email:      tui.NewTextInput(tagEmail, "you@example.com"),
		age:        tui.NewTextInput(tagAge, "age"),
		newsletter: tui.NewToggle(tagNewsletter),
		greeting:   tui.NewLabel(),
		status:     tui.NewLabel(),
	}
	ed.age.SetCharLimit(3)

	ed.registry.Bind(
		databind.Sync(profileName, ed.name),
		databind.Sync(profileEmail, ed.email),
		databind.NewTwoWay(profileAge, ed.age,
			func(in *tui.TextInput, age int, _ Profile) { in.SetValue(strconv.Itoa(age)) },
			func(p *Profile, in *tui.TextInput) {
				age, err := strconv.Atoi(strings.TrimSpace(in.Value()))
				if err != nil {
					age = 0
				}
				p.Age = age
			},
		),
		databind.Sync(profileNewsletter, ed.newsletter),

		databind.NewOneWay(profileName, ed.greeting, func(l *tui.Label, name string, _ Profile) {
			l.SetValue("Hello, " + name + "!")
		}),
		summaryOf(profileName, ed.status),
		summaryOf(profileEmail, ed.status),
		summaryOf(profileAge, ed.status),
		summaryOf(profileNewsletter, ed.status),
	)

	ed.form = tui.NewForm("Profile").
		Add("Name", ed.name).
		Add("Email", ed.email).
		Add("Age", ed.age).
		Add("Newsletter", ed.newsletter).
		Add("", ed.greeting).
		Add("Summary", ed.status)
	return ed
}

// summaryOf refreshes the summary label whenever field changes.
func summaryOf[V any](field databind.Field[Profile, V], l *tui.Label) *databind.OneWay[Profile] {
	return databind.NewOneWay(field, l, func(l *tui.Label, _ V, p Profile) { l.SetValue(summary(p)) })
}

func summary(p Profile) string {
	news := "no newsletter"
	if p.Newsletter {
		news = "newsletter"
	}
	email := p.Email
	if email == "" {
		email = "no email"
	}
	return fmt.Sprintf("%s, %d, %s, %s", p.Name, p.Age, email, news)
}
