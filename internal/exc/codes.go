package exc

const (
	CodeUnknownFatal       = "R0000"
	CodeFileNotFound       = "R0001"
	CodeUnexpectedEOF      = "R0002"
	CodeInvalidNumber      = "R0003"
	CodeInvalidSymbol      = "R0004"
	CodeInvalidCharLiteral = "R0005"
	CodeInvalidToken       = "R0006"
	CodeSyntax             = "R0007"
)

var (
	defaultNonFatal = map[string]bool{}
)
