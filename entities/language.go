package entities

type Language string

const (
	LangEN Language = "en"
	LangTR Language = "tr"
)

// ParseLanguage returns the language for code and whether it was recognised.
func ParseLanguage(code string) (Language, bool) {
	switch Language(code) {
	case LangEN:
		return LangEN, true
	case LangTR:
		return LangTR, true
	}
	return LangEN, false
}
