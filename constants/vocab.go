package constants

// DefaultItems is the closed item vocabulary for the local extractor.
// List order is load-bearing: the first entry found in a transcript wins.
// Extending the vocabulary is a config change, not a code change.
var DefaultItems = []string{
	"rice",
	"beans",
	"tomato",
	"stock",
	"goods",
	"bag",
	"crate",
	"change",
}

// Honorifics are common Nigerian address forms that precede a name.
// The person extractor strips them from captured names.
var Honorifics = []string{"mama", "baba", "iya", "brother", "sister"}
