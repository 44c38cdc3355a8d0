package validator

func ValidateContactInput(v *Validator, name string) {
	v.Check(name != "", "name", "Name is required")
}
