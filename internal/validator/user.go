package validator

import (
	"unicode/utf8"
)

func ValidateRegisterInput(v *Validator, name, email, password string) {
	v.Check(name != "", "name", "Please add a name")
	v.Check(Matches(email, EmailRX), "email", "Please add a valid email")
	v.Check(utf8.RuneCountInString(password) >= 6, "password", "Please enter a password with 6 or more characters")
	v.Check(utf8.RuneCountInString(password) <= 72, "password", "Please enter a password with 72 or fewer characters")
}

func ValidateLoginInput(v *Validator, email, password string) {
	v.Check(Matches(email, EmailRX), "email", "Email is required")
	v.Check(password != "", "password", "Password is required")
}
