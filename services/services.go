package services

import "net/mail"

func statusIn(status string, valid []string) bool {
	for _, s := range valid {
		if status == s {
			return true
		}
	}
	return false
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
