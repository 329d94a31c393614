package chain

// Keyword is a chain continuation.
type Keyword int

const (
	KeywordUnknown Keyword = iota
	KeywordThen
	KeywordThenDo
	KeywordElse
	KeywordElseDo
	KeywordElseIf
	KeywordEnd
	KeywordEndDollar
)

var keywordNames = [...]string{
	KeywordUnknown:   "unknown",
	KeywordThen:      "then",
	KeywordThenDo:    "thenDo",
	KeywordElse:      "else",
	KeywordElseDo:    "elseDo",
	KeywordElseIf:    "elseIf",
	KeywordEnd:       "end",
	KeywordEndDollar: "end$",
}

// LookupKeyword maps a member name to its continuation keyword.
func LookupKeyword(name string) Keyword {
	for k, n := range keywordNames {
		if k != int(KeywordUnknown) && n == name {
			return Keyword(k)
		}
	}
	return KeywordUnknown
}

func (k Keyword) String() string {
	if k < 0 || int(k) >= len(keywordNames) {
		return "unknown"
	}
	return keywordNames[k]
}

// IsTerminator reports whether k ends a chain.
func (k Keyword) IsTerminator() bool {
	return k == KeywordEnd || k == KeywordEndDollar
}

// Discards reports whether the arguments of k are evaluated only for their
// side effects.
func (k Keyword) Discards() bool {
	return k == KeywordThenDo || k == KeywordElseDo
}
