package extract

import "testing"

func TestPerson(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
		wantNil    bool
	}{
		{"from with single name", "I collect 5k from Ngozi", "Ngozi", false},
		{"to with single name", "I send goods to Chidi", "Chidi", false},
		{"for with single name", "bought beans for Amaka", "Amaka", false},
		// Two-word capture with a leading honorific keeps only the name
		// proper.
		{"honorific after preposition", "Bought stock for 10k from Iya Biliki", "Biliki", false},
		{"standalone honorific pattern", "Mama Ngozi owes me 12k", "Ngozi", false},
		{"baba honorific", "Baba Segun paid me 3k", "Segun", false},
		// Two capitalized words that are not honorific plus name survive
		// intact.
		{"full name kept", "I collect 5k from Chidi Okafor", "Chidi Okafor", false},
		{"lowercase name missed", "i collect 5k from ngozi", "", true},
		{"no person", "sold 3 bags of rice for 15k cash", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Person(tt.transcript)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Person(%q) = %q, want nil", tt.transcript, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("Person(%q) = %v, want %q", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestStripHonorific(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Iya Biliki", "Biliki"},
		{"Mama Ngozi", "Ngozi"},
		{"Brother John", "John"},
		{"Chidi Okafor", "Chidi Okafor"},
		{"Ngozi", "Ngozi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripHonorific(tt.in); got != tt.want {
			t.Errorf("stripHonorific(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
