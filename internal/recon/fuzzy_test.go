package recon

import "testing"

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name  string
		nameA string
		nameB string
		want  int
	}{
		{
			name:  "identical names score 100",
			nameA: "ACME CORP",
			nameB: "ACME CORP",
			want:  100,
		},
		{
			name:  "empty first input scores 0",
			nameA: "",
			nameB: "anything",
			want:  0,
		},
		{
			name:  "empty second input scores 0",
			nameA: "anything",
			nameB: "",
			want:  0,
		},
		{
			name:  "placeholder scores 0",
			nameA: "—",
			nameB: "X",
			want:  0,
		},
		{
			name:  "equal length fully different scores 0",
			nameA: "AAAA",
			nameB: "BBBB",
			want:  0,
		},
		{
			name:  "case and whitespace are normalized away",
			nameA: "john   smith",
			nameB: "JOHN SMITH",
			want:  100,
		},
		{
			name:  "one edit over ten characters scores 90",
			nameA: "JOHN SMITH",
			nameB: "JON SMITH",
			want:  90,
		},
		{
			name:  "classic kitten sitting scores 57",
			nameA: "KITTEN",
			nameB: "SITTING",
			want:  57,
		},
		{
			name:  "whitespace-only input scores 0",
			nameA: "   ",
			nameB: "JOHN",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FuzzyScore(tt.nameA, tt.nameB)
			if got != tt.want {
				t.Errorf("FuzzyScore(%q, %q) = %d, want %d", tt.nameA, tt.nameB, got, tt.want)
			}
		})
	}
}
