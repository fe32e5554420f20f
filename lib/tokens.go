package lib

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypeIdent
	tokenTypeLParen
	tokenTypeRParen
	tokenTypePlus
	tokenTypeMinus
	tokenTypeAsterisk
	tokenTypeSlash
	tokenTypeCaret
)

// charLocation points at the first rune of a token. offset is the rune
// offset from the start of the expression; line/col are 1-based and only
// differ from offset when the input spans multiple lines (script files).
type charLocation struct {
	offset int
	line   int
	col    int
}

type token struct {
	tokType  tokenType
	value    []rune
	location charLocation
}

func tokenText(tok token) string {
	switch tok.tokType {
	case tokenTypeNumber, tokenTypeIdent:
		return string(tok.value)
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeSlash:
		return "/"
	case tokenTypeCaret:
		return "^"
	default:
		return "?"
	}
}
