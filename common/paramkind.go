package common

// ParamKind is the node kind of a ParamTree leaf or composite, per
// spec.md §4.1. Modeled the way the teacher models its business
// transaction type tags (see the original biz_type.go this was
// adapted from): a byte-backed enum plus a validity check.
type ParamKind byte

const (
	ParamNumeric   ParamKind = 0x00
	ParamBoolean   ParamKind = 0x01
	ParamNull      ParamKind = 0x02
	ParamString    ParamKind = 0x03
	ParamComposite ParamKind = 0x04
)

// CheckParamKind reports whether k is one of the five kinds the
// argument marshaller knows how to convert.
func CheckParamKind(k ParamKind) bool {
	switch k {
	case ParamNumeric, ParamBoolean, ParamNull, ParamString, ParamComposite:
		return true
	default:
		return false
	}
}

func (k ParamKind) String() string {
	switch k {
	case ParamNumeric:
		return "Numeric"
	case ParamBoolean:
		return "Boolean"
	case ParamNull:
		return "Null"
	case ParamString:
		return "String"
	case ParamComposite:
		return "Composite"
	default:
		return "Unknown"
	}
}
