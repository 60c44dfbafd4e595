package scarpet

// reservedConstants are the identifiers the language predefines; they scan
// as Constant rather than Variable unless immediately called.
var reservedConstants = map[string]struct{}{
	"euler": {},
	"pi":    {},
	"null":  {},
	"true":  {},
	"false": {},
}

// IsReservedConstant reports whether name is a predefined constant.
func IsReservedConstant(name string) bool {
	_, ok := reservedConstants[name]
	return ok
}
