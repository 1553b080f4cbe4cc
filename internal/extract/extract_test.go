package extract

import (
	"testing"

	"github.com/cashflow-ng/cashflow-parser/constants"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       constants.TxType
	}{
		{"sold is income", "sold 3 bags of rice for 15k cash", constants.Income},
		{"collect is income", "i collect 5k from ngozi", constants.Income},
		{"owes is debt", "mama ngozi owes me 12k", constants.Debt},
		{"pidgin debt", "na him owe me 7k", constants.Debt},
		{"borrow is debt", "i borrow 2k from baba", constants.Debt},
		{"bought is expense", "bought stock for 10k", constants.Expense},
		{"pidgin expense", "i buy market for 8k", constants.Expense},
		{"no keyword defaults to expense", "random words here", constants.Expense},
		{"empty defaults to expense", "", constants.Expense},
		// "sold" outranks "owe" and "buy" when phrases mix.
		{"income beats debt", "sold goods to him because he owe me", constants.Income},
		{"income beats expense", "sold rice then buy beans", constants.Income},
		{"debt beats expense", "he owe me so i buy less", constants.Debt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectType(tt.transcript); got != tt.want {
				t.Errorf("DetectType(%q) = %v, want %v", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestItem(t *testing.T) {
	vocab := constants.DefaultItems

	tests := []struct {
		name       string
		transcript string
		want       string
		wantNil    bool
	}{
		{"rice", "sold 3 bags of rice for 15k cash", "rice", false},
		{"stock", "bought stock for 10k from iya biliki", "stock", false},
		{"change", "took 2k as change", "change", false},
		{"substring match", "bought tomatoes today", "tomato", false},
		{"no item", "i collect 5k from ngozi", "", true},
		// Vocabulary order decides when several entries appear: rice
		// precedes bag in the default list.
		{"order picks earlier entry", "one bag of rice", "rice", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Item(tt.transcript, vocab)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Item(%q) = %q, want nil", tt.transcript, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("Item(%q) = %v, want %q", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       int
		wantNil    bool
	}{
		{"bags", "Sold 3 bags of rice", 3, false},
		{"singular bag", "1 bag of beans", 1, false},
		{"crates", "2 crates of soft drink", 2, false},
		{"pieces", "10 pieces of cloth", 10, false},
		{"number without unit", "sold rice for 3000", 0, true},
		{"unit without number", "a bag of rice", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantity(tt.transcript)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Quantity(%q) = %d, want nil", tt.transcript, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("Quantity(%q) = %v, want %d", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       constants.Method
		wantNil    bool
	}{
		{"cash", "sold rice for 15k cash", constants.MethodCash, false},
		{"pos", "paid with pos", constants.MethodPOS, false},
		{"card maps to pos", "she pay with card", constants.MethodPOS, false},
		{"transfer", "he do transfer", constants.MethodTransfer, false},
		{"bank maps to transfer", "send am to my bank", constants.MethodTransfer, false},
		{"cash wins over transfer", "cash or transfer", constants.MethodCash, false},
		{"none", "sold rice for 15k", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Method(tt.transcript)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Method(%q) = %v, want nil", tt.transcript, *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Errorf("Method(%q) = %v, want %v", tt.transcript, got, tt.want)
			}
		})
	}
}
