// Package form holds the pure validators for every HTML form the application
// accepts. Validators return a Result, never an error; the message is the
// flash text surfaced to the user.
package form

import "unicode/utf8"

const (
	MaxTitleLength = 60
	YearLength     = 4
	MaxNameLength  = 20

	invalidInputMessage = "Invalid input."
)

type Result struct {
	OK      bool
	Message string
}

func valid() Result {
	return Result{OK: true}
}

func invalid(message string) Result {
	return Result{Message: message}
}

// MovieForm backs both the create form on the index page and the edit form.
// The year must be exactly four characters on both paths.
type MovieForm struct {
	Title string
	Year  string
}

func (f MovieForm) Validate() Result {
	if f.Title == "" || f.Year == "" {
		return invalid(invalidInputMessage)
	}
	if utf8.RuneCountInString(f.Title) > MaxTitleLength {
		return invalid(invalidInputMessage)
	}
	if utf8.RuneCountInString(f.Year) != YearLength {
		return invalid(invalidInputMessage)
	}
	return valid()
}

type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) Validate() Result {
	if f.Username == "" || f.Password == "" {
		return invalid(invalidInputMessage)
	}
	return valid()
}

type SettingsForm struct {
	Name string
}

func (f SettingsForm) Validate() Result {
	if f.Name == "" || utf8.RuneCountInString(f.Name) > MaxNameLength {
		return invalid(invalidInputMessage)
	}
	return valid()
}
