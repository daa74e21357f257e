package env

import "testing"

func TestGetString(t *testing.T) {
	t.Setenv("OXLOG_TEST_STR", "valor")

	if got := GetString("OXLOG_TEST_STR", "padrão"); got != "valor" {
		t.Errorf("GetString = %q, want %q", got, "valor")
	}
	if got := GetString("OXLOG_TEST_STR_MISSING", "padrão"); got != "padrão" {
		t.Errorf("GetString fallback = %q, want %q", got, "padrão")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("OXLOG_TEST_INT", "42")
	t.Setenv("OXLOG_TEST_INT_BAD", "quarenta")

	if got := GetInt("OXLOG_TEST_INT", 7); got != 42 {
		t.Errorf("GetInt = %d, want 42", got)
	}
	if got := GetInt("OXLOG_TEST_INT_BAD", 7); got != 7 {
		t.Errorf("GetInt with unparsable value = %d, want fallback 7", got)
	}
	if got := GetInt("OXLOG_TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("GetInt fallback = %d, want 7", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("OXLOG_TEST_BOOL", "true")
	t.Setenv("OXLOG_TEST_BOOL_OFF", "0")
	t.Setenv("OXLOG_TEST_BOOL_BAD", "sim")

	if got := GetBool("OXLOG_TEST_BOOL", false); got != true {
		t.Errorf("GetBool = %v, want true", got)
	}
	if got := GetBool("OXLOG_TEST_BOOL_OFF", true); got != false {
		t.Errorf("GetBool = %v, want false", got)
	}
	if got := GetBool("OXLOG_TEST_BOOL_BAD", true); got != true {
		t.Errorf("GetBool with unparsable value = %v, want fallback true", got)
	}
	if got := GetBool("OXLOG_TEST_BOOL_MISSING", true); got != true {
		t.Errorf("GetBool fallback = %v, want true", got)
	}
}
