package validation

import "testing"

func TestIsValidRUT(t *testing.T) {
	valid := []string{
		"11111111-1",
		"11.111.111-1",
		"12345678-5",
		"12.345.678-5",
		"123456785",
		"6-K",
		"6-k",
	}
	for _, rut := range valid {
		if !IsValidRUT(rut) {
			t.Errorf("expected %q to be valid", rut)
		}
	}

	invalid := []string{
		"",
		"1",
		"12345678-9",
		"11111111-K",
		"abcdefgh-1",
		"12.345.67x-5",
		"1234567890-5",
		"12345678901234567890-1",
	}
	for _, rut := range invalid {
		if IsValidRUT(rut) {
			t.Errorf("expected %q to be invalid", rut)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+56912345678",
		"912345678",
		"12345678",
		"  912345678  ",
	}
	for _, p := range valid {
		if !IsValidPhone(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}

	invalid := []string{
		"",
		"1234",
		"812345678",
		"+56812345678",
		"+5691234567",
		"phone",
	}
	for _, p := range invalid {
		if IsValidPhone(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}
