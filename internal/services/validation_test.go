package services

import (
	"strings"
	"testing"
)

func TestValidateFlashcard(t *testing.T) {
	tests := []struct {
		name     string
		front    string
		back     string
		category string
		want     []string
	}{
		{
			name:     "valid input",
			front:    "Capital of France",
			back:     "Paris",
			category: "Geography",
			want:     nil,
		},
		{
			name:     "boundary lengths accepted",
			front:    strings.Repeat("a", 500),
			back:     strings.Repeat("b", 1000),
			category: strings.Repeat("c", 50),
			want:     nil,
		},
		{
			name:     "minimum front length accepted",
			front:    "abc",
			back:     "x",
			category: "General",
			want:     nil,
		},
		{
			name:     "surrounding whitespace is trimmed",
			front:    "  abc  ",
			back:     "  x  ",
			category: "  General  ",
			want:     nil,
		},
		{
			name:     "missing front",
			front:    "",
			back:     "Paris",
			category: "Geography",
			want:     []string{"Question/Term is required"},
		},
		{
			name:     "whitespace-only front",
			front:    "   ",
			back:     "Paris",
			category: "Geography",
			want:     []string{"Question/Term is required"},
		},
		{
			name:     "front too short",
			front:    "Hi",
			back:     "Paris",
			category: "Geography",
			want:     []string{"Question/Term must be at least 3 characters"},
		},
		{
			name:     "front too long",
			front:    strings.Repeat("a", 501),
			back:     "Paris",
			category: "Geography",
			want:     []string{"Question/Term cannot exceed 500 characters"},
		},
		{
			name:     "missing back",
			front:    "Capital of France",
			back:     "",
			category: "Geography",
			want:     []string{"Answer/Definition is required"},
		},
		{
			name:     "back too long",
			front:    "Capital of France",
			back:     strings.Repeat("b", 1001),
			category: "Geography",
			want:     []string{"Answer/Definition cannot exceed 1000 characters"},
		},
		{
			name:     "missing category",
			front:    "Capital of France",
			back:     "Paris",
			category: "",
			want:     []string{"Category is required"},
		},
		{
			name:     "category too long",
			front:    "Capital of France",
			back:     "Paris",
			category: strings.Repeat("c", 51),
			want:     []string{"Category cannot exceed 50 characters"},
		},
		{
			name:     "all fields invalid, front errors first",
			front:    "",
			back:     "",
			category: "",
			want: []string{
				"Question/Term is required",
				"Answer/Definition is required",
				"Category is required",
			},
		},
		{
			name:     "violations collected independently",
			front:    "Hi",
			back:     strings.Repeat("b", 1001),
			category: strings.Repeat("c", 51),
			want: []string{
				"Question/Term must be at least 3 characters",
				"Answer/Definition cannot exceed 1000 characters",
				"Category cannot exceed 50 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateFlashcard(tt.front, tt.back, tt.category)
			if len(got) != len(tt.want) {
				t.Fatalf("ValidateFlashcard() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ValidateFlashcard()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateFlashcard_Deterministic(t *testing.T) {
	first := ValidateFlashcard("Hi", "", "")
	second := ValidateFlashcard("Hi", "", "")

	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("repeated calls disagree at %d: %q vs %q", i, first[i], second[i])
		}
	}
}
