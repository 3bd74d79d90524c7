package cmd

import (
	"reflect"
	"testing"
	"time"

	"github.com/karvel/folio/internal/derive"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{" , ,", []string{}},
	}
	for _, tt := range tests {
		got := parseTags(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseTags(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDateOrToday(t *testing.T) {
	got, err := dateOrToday("")
	if err != nil {
		t.Fatalf("dateOrToday(\"\"): %v", err)
	}
	if got != time.Now().Format(derive.DateLayout) {
		t.Errorf("dateOrToday(\"\") = %q, want today", got)
	}

	got, err = dateOrToday("2026-03-15")
	if err != nil || got != "2026-03-15" {
		t.Errorf("dateOrToday passthrough = %q, %v", got, err)
	}

	if _, err := dateOrToday("15/03/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
