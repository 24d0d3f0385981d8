// Package document valida CPF y CNPJ por sus dígitos verificadores (módulo 11).
package document

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidDocument documento con largo o dígitos verificadores inválidos.
var ErrInvalidDocument = errors.New("document: inválido")

// pesos de los dígitos verificadores; el segundo dígito usa la base más el primero.
var (
	cpfWeights1  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Kind tipo de documento detectado por la cantidad de dígitos.
type Kind string

const (
	KindCPF  Kind = "cpf"
	KindCNPJ Kind = "cnpj"
)

// Validate acepta CPF (11 dígitos) o CNPJ (14), con o sin puntos, guiones y barra:
// "529.982.247-25", "11.222.333/0001-81" o "11222333000181".
func Validate(doc string) (Kind, error) {
	digits := Digits(doc)
	switch len(digits) {
	case 11:
		if repeated(digits) || !checkDigits(digits, cpfWeights1, cpfWeights2) {
			return "", fmt.Errorf("%w: dígito verificador del CPF", ErrInvalidDocument)
		}
		return KindCPF, nil
	case 14:
		if repeated(digits) || !checkDigits(digits, cnpjWeights1, cnpjWeights2) {
			return "", fmt.Errorf("%w: dígito verificador del CNPJ", ErrInvalidDocument)
		}
		return KindCNPJ, nil
	}
	return "", fmt.Errorf("%w: se esperaban 11 o 14 dígitos, se encontraron %d", ErrInvalidDocument, len(digits))
}

// Digits devuelve sólo los dígitos de s.
func Digits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) && r < 128 {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

func checkDigits(digits string, w1, w2 []int) bool {
	n := len(w1)
	return verifier(digits[:n], w1) == digits[n] && verifier(digits[:n+1], w2) == digits[n+1]
}

func verifier(base string, weights []int) byte {
	var sum int
	for i := range weights {
		sum += int(base[i]-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

// "111.111.111-11" pasa el módulo 11 pero no es un documento emitido.
func repeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
