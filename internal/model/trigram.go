package model

// Trigram is one of the eight Bagua trigrams, named by its character.
type Trigram string

const (
	TrigramQian Trigram = "乾"
	TrigramKun  Trigram = "坤"
	TrigramZhen Trigram = "震"
	TrigramXun  Trigram = "巽"
	TrigramKan  Trigram = "坎"
	TrigramLi   Trigram = "离"
	TrigramGen  Trigram = "艮"
	TrigramDui  Trigram = "兑"
)

var trigramSymbols = map[Trigram]string{
	TrigramQian: "☰",
	TrigramKun:  "☷",
	TrigramZhen: "☳",
	TrigramXun:  "☴",
	TrigramKan:  "☵",
	TrigramLi:   "☲",
	TrigramGen:  "☶",
	TrigramDui:  "☱",
}

// Trigrams lists all eight trigrams in King Wen order.
var Trigrams = []Trigram{
	TrigramQian, TrigramKun, TrigramZhen, TrigramXun,
	TrigramKan, TrigramLi, TrigramGen, TrigramDui,
}

// Valid reports whether t names a known trigram.
func (t Trigram) Valid() bool {
	_, ok := trigramSymbols[t]
	return ok
}

// Symbol returns the Unicode symbol for t, or "" if t is unknown.
func (t Trigram) Symbol() string {
	return trigramSymbols[t]
}

// Or returns t if it is a known trigram, otherwise fallback.
func (t Trigram) Or(fallback Trigram) Trigram {
	if t.Valid() {
		return t
	}
	return fallback
}
