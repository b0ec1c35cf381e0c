package phonenumbers

// ErrorKind categorises why a parse attempt failed. The HTTP layer maps
// these onto transport errors; the library itself never panics on bad input.
type ErrorKind int

const (
	// KindNotANumber means the input is empty or fails the viable-number grammar.
	KindNotANumber ErrorKind = iota
	// KindInvalidCountryCode means an international marker was present but the
	// digits after it match no known calling code, or no default region was
	// available to infer one.
	KindInvalidCountryCode
	// KindTooShortAfterIDD means too few digits remained after an international prefix.
	KindTooShortAfterIDD
	// KindTooShortNSN means the national significant number is below the universal minimum.
	KindTooShortNSN
	// KindTooLong means the input or the national number exceeds the universal maximum.
	KindTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotANumber:
		return "NOT_A_NUMBER"
	case KindInvalidCountryCode:
		return "INVALID_COUNTRY_CODE"
	case KindTooShortAfterIDD:
		return "TOO_SHORT_AFTER_IDD"
	case KindTooShortNSN:
		return "TOO_SHORT_NSN"
	case KindTooLong:
		return "TOO_LONG"
	default:
		return "NOT_A_NUMBER"
	}
}

// ParseError is a typed parse failure with a human-readable message.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(kind ErrorKind, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message}
}

func errNotANumber(message string) *ParseError {
	return newParseError(KindNotANumber, message)
}

func errInvalidCountryCode(message string) *ParseError {
	return newParseError(KindInvalidCountryCode, message)
}

func errTooShortAfterIDD(message string) *ParseError {
	return newParseError(KindTooShortAfterIDD, message)
}

func errTooShortNSN(message string) *ParseError {
	return newParseError(KindTooShortNSN, message)
}

func errTooLong(message string) *ParseError {
	return newParseError(KindTooLong, message)
}

// KindOf extracts the error kind from an error returned by this package.
// The second return is false when err is not a *ParseError.
func KindOf(err error) (ErrorKind, bool) {
	if e, ok := err.(*ParseError); ok {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a *ParseError with the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
