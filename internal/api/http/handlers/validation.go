package handlers

import (
	"regexp"
	"strings"
)

// emailPattern accepts local@domain.tld shapes: word characters, hyphens
// and dots in the local part, dot-separated domain labels, and a top-level
// label of 2 to 4 characters.
var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
