package value

import "github.com/lumenlang/lumen/internal/ast"

// firstFieldAccess walks expr looking for the first FieldAccess node,
// depth-first in source order, to supply the second span of a
// cyclic-reference diagnostic (spec §4.2): the field access that
// re-entered the thunk currently being forced.
func firstFieldAccess(expr ast.Expr) (*ast.FieldAccess, bool) {
	switch x := expr.(type) {
	case nil:
		return nil, false
	case *ast.FieldAccess:
		return x, true
	case *ast.Apply:
		if fa, ok := firstFieldAccess(x.Func); ok {
			return fa, true
		}
		return firstFieldAccess(x.Arg)
	case *ast.Binary:
		if fa, ok := firstFieldAccess(x.Left); ok {
			return fa, true
		}
		return firstFieldAccess(x.Right)
	case *ast.Unary:
		return firstFieldAccess(x.Operand)
	case *ast.If:
		if fa, ok := firstFieldAccess(x.Cond); ok {
			return fa, true
		}
		if fa, ok := firstFieldAccess(x.Then); ok {
			return fa, true
		}
		return firstFieldAccess(x.Else)
	case *ast.Let:
		if fa, ok := firstFieldAccess(x.Value); ok {
			return fa, true
		}
		return firstFieldAccess(x.Body)
	case *ast.Where:
		for _, b := range x.Bindings {
			if fa, ok := firstFieldAccess(b.Value); ok {
				return fa, true
			}
		}
		return firstFieldAccess(x.Body)
	case *ast.Index:
		if fa, ok := firstFieldAccess(x.Object); ok {
			return fa, true
		}
		return firstFieldAccess(x.Key)
	case *ast.FieldProjection:
		return firstFieldAccess(x.Object)
	case *ast.TupleLiteral:
		for _, el := range x.Elements {
			if fa, ok := firstFieldAccess(el); ok {
				return fa, true
			}
		}
	case *ast.ArrayLiteral:
		for _, el := range x.Elements {
			if fa, ok := firstFieldAccess(el.Value); ok {
				return fa, true
			}
		}
	case *ast.ObjectLiteral:
		for _, f := range x.Fields {
			if fa, ok := firstFieldAccess(f.Value); ok {
				return fa, true
			}
		}
	case *ast.ObjectExtend:
		if fa, ok := firstFieldAccess(x.Base); ok {
			return fa, true
		}
		for _, f := range x.Fields {
			if fa, ok := firstFieldAccess(f.Value); ok {
				return fa, true
			}
		}
	case *ast.InterpolatedString:
		for _, part := range x.Parts {
			if fa, ok := firstFieldAccess(part.Expr); ok {
				return fa, true
			}
		}
	}
	return nil, false
}
