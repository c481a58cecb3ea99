package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      EmployeeRole
	CreatedAt time.Time
}

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Initials returns up to two upper-case letters for avatar fallbacks.
func (e *Employee) Initials() string {
	var b strings.Builder
	for _, part := range []string{e.FirstName, e.LastName} {
		if r, _ := utf8.DecodeRuneInString(part); r != utf8.RuneError {
			b.WriteString(strings.ToUpper(string(r)))
		}
	}
	return b.String()
}
