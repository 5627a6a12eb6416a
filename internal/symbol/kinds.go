package symbol

import "strconv"

// kindNames maps LSP SymbolKind codes (1-26) to their display names.
var kindNames = [...]string{
	1:  "File",
	2:  "Module",
	3:  "Namespace",
	4:  "Package",
	5:  "Class",
	6:  "Method",
	7:  "Property",
	8:  "Field",
	9:  "Constructor",
	10: "Enum",
	11: "Interface",
	12: "Function",
	13: "Variable",
	14: "Constant",
	15: "String",
	16: "Number",
	17: "Boolean",
	18: "Array",
	19: "Object",
	20: "Key",
	21: "Null",
	22: "EnumMember",
	23: "Struct",
	24: "Event",
	25: "Operator",
	26: "TypeParameter",
}

// KindName returns the symbol category name for an LSP SymbolKind code.
// Unknown codes are returned as their decimal string representation.
func KindName(code int) string {
	if code >= 1 && code < len(kindNames) {
		return kindNames[code]
	}
	return strconv.Itoa(code)
}
