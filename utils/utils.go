package utils

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// CleanCPF strips every non-digit character from a CPF, so formatted
// ("123.456.789-00") and plain ("12345678900") inputs resolve to the same
// stored key.
func CleanCPF(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// StringList converts a decoded JSON value into a list of strings.
// Returns false when the value is not a list or contains non-string items.
func StringList(v interface{}) ([]string, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}

	cursos := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		cursos = append(cursos, s)
	}
	return cursos, true
}
