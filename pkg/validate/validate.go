package validate

import (
	"net/mail"
	"net/url"
	"regexp"
)

var phoneRe = regexp.MustCompile(`^[0-9+\-\s]{7,15}$`)

func IsEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
