package br

import (
	"fmt"
	"strings"
	"unicode"
)

// pesos dos dois dígitos verificadores do CNPJ (módulo 11, Receita Federal).
var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// FormatCNPJ aplica a máscara 00.000.000/0000-00 sobre os dígitos informados.
// Entradas com menos de 14 dígitos são mascaradas até onde der (eco do input do app).
func FormatCNPJ(s string) string {
	digits := extractDigits(s)
	if len(digits) > 14 {
		digits = digits[:14]
	}
	var b strings.Builder
	for i, d := range digits {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteByte(d)
	}
	return b.String()
}

// ValidateCNPJ valida um CNPJ (com ou sem máscara): 14 dígitos e dígitos
// verificadores corretos segundo o módulo 11.
func ValidateCNPJ(cnpj string) error {
	digits := extractDigits(cnpj)
	if len(digits) != 14 {
		return fmt.Errorf("br: CNPJ deve ter 14 dígitos, foram encontrados %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("br: CNPJ com todos os dígitos iguais é inválido")
	}
	first := checkDigit(digits[:12], cnpjWeightsFirst[:])
	if digits[12] != first {
		return fmt.Errorf("br: primeiro dígito verificador do CNPJ inválido: esperado %c, recebido %c", first, digits[12])
	}
	second := checkDigit(digits[:13], cnpjWeightsSecond[:])
	if digits[13] != second {
		return fmt.Errorf("br: segundo dígito verificador do CNPJ inválido: esperado %c, recebido %c", second, digits[13])
	}
	return nil
}

func checkDigit(base []byte, weights []int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
