package value

import (
	"strconv"
	"strings"

	"github.com/lumenlang/lumen/internal/diag"
)

// Format renders a value the way string interpolation and error
// messages do (spec §9: "part of the value module, not the
// evaluator; it must recursively force thunks before printing").
func Format(v Value) (string, *diag.Error) {
	fv, err := Force(v)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := format(&sb, fv, false); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// format writes fv's textual form. quoteStrings controls whether
// strings get surrounded by quote marks (symbols are always written
// bare) — true when nested
// inside a container (so `[ "a", "b" ]` renders with quotes) and false
// at the top level (so interpolation of a bare string doesn't double
// up on quotes).
func format(sb *strings.Builder, fv Value, quoteStrings bool) *diag.Error {
	switch v := fv.(type) {
	case Int:
		sb.WriteString(strconv.FormatInt(v.Value, 10))
	case Float:
		sb.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	case Bool:
		if v.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Null:
		sb.WriteString("null")
	case Symbol:
		sb.WriteString(v.Name)
	case Str:
		if quoteStrings {
			sb.WriteByte('"')
			sb.WriteString(v.Value)
			sb.WriteByte('"')
		} else {
			sb.WriteString(v.Value)
		}
	case *Array:
		sb.WriteByte('[')
		for i, el := range v.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			fel, err := Force(el)
			if err != nil {
				return err
			}
			if err := format(sb, fel, true); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case *Tuple:
		sb.WriteByte('(')
		for i, el := range v.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			fel, err := Force(el)
			if err != nil {
				return err
			}
			if err := format(sb, fel, true); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	case *Object:
		sb.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteString(": ")
			fval, err := Force(f.Value)
			if err != nil {
				return err
			}
			if err := format(sb, fval, true); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	case *Function:
		if v.Name != "" {
			sb.WriteString("<function " + v.Name + ">")
		} else {
			sb.WriteString("<function>")
		}
	case *Native:
		sb.WriteString("<native " + v.Name + ">")
	case Range:
		sb.WriteString(strconv.FormatInt(v.Start, 10))
		if v.Inclusive {
			sb.WriteString("..=")
		} else {
			sb.WriteString("..")
		}
		sb.WriteString(strconv.FormatInt(v.End, 10))
	case *Thunk:
		// Force already handled at the call site; reaching here means a
		// nested container holds an un-forced thunk (e.g. array element).
		fv2, err := Force(v)
		if err != nil {
			return err
		}
		return format(sb, fv2, quoteStrings)
	default:
		sb.WriteString("<?>")
	}
	return nil
}
