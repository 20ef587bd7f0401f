package format

import (
	"fmt"
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D`)

// Digits strips everything that is not a digit.
func Digits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// CPF masks an 11-digit tax id as 123.456.789-01. Inputs with any other
// digit count come back stripped but unmasked.
func CPF(cpf string) string {
	cleaned := Digits(cpf)
	if len(cleaned) != 11 {
		return cleaned
	}
	return fmt.Sprintf("%s.%s.%s-%s", cleaned[:3], cleaned[3:6], cleaned[6:9], cleaned[9:])
}

// CNPJ masks a 14-digit tax id as 12.345.678/0001-99. Inputs with any
// other digit count come back stripped but unmasked.
func CNPJ(cnpj string) string {
	cleaned := Digits(cnpj)
	if len(cleaned) != 14 {
		return cleaned
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", cleaned[:2], cleaned[2:5], cleaned[5:8], cleaned[8:12], cleaned[12:])
}
