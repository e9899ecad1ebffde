package weather

import "testing"

// TestFoldDiacritics verifies the Romanian-specific folding, including the
// legacy cedilla codepoints some geocoding payloads carry.
func TestFoldDiacritics(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Brăila", "braila"},
		{"braila", "braila"},
		{"BRĂILA", "braila"},
		{"Timișoara", "timisoara"},
		{"Timişoara", "timisoara"}, // cedilla form
		{"Constanța", "constanta"},
		{"Constanţa", "constanta"}, // cedilla form
		{"Târgu Mureș", "targu mures"},
		{"Iași", "iasi"},
		{"Cluj-Napoca", "cluj-napoca"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FoldDiacritics(tc.in); got != tc.want {
			t.Errorf("FoldDiacritics(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
