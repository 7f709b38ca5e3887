package medtext

import "regexp"

var (
	phonePattern  = regexp.MustCompile(`\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}`)
	doctorPattern = regexp.MustCompile(`Dr\.\s+[A-Z][a-z]+\s+[A-Z][a-z]+`)
)

// PhoneNumbers returns phone-shaped substrings in text order.
func PhoneNumbers(text string) []string {
	var out []string
	for _, line := range Lines(text) {
		out = append(out, phonePattern.FindAllString(line, -1)...)
	}
	return out
}

// DoctorNames returns "Dr. First Last" substrings in text order.
func DoctorNames(text string) []string {
	var out []string
	for _, line := range Lines(text) {
		out = append(out, doctorPattern.FindAllString(line, -1)...)
	}
	return out
}
