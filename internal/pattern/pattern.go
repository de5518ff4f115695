// Package pattern implements the pattern matcher (spec §4.1): it
// destructures a value against a pattern, returning an extended
// environment or a typed mismatch. Besides the environment frames it
// adds, the matcher allocates only mismatch errors and the tail array
// bound to an array pattern's rest identifier.
package pattern

import (
	"fmt"

	"github.com/lumenlang/lumen/internal/ast"
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

// Match destructures val against pat, extending base with one frame
// per bound identifier. On mismatch it returns a *diag.Error of kind
// type_mismatch carrying the pattern's location.
func Match(pat ast.Pattern, val value.Value, base *env.Environment) (*env.Environment, *diag.Error) {
	switch p := pat.(type) {
	case *ast.IdentPattern:
		return env.Extend(base, p.Name, val), nil

	case *ast.LiteralPattern:
		return matchLiteral(p, val, base)

	case *ast.TuplePattern:
		return matchTuple(p, val, base)

	case *ast.ArrayPattern:
		return matchArray(p, val, base)

	case *ast.ObjectPattern:
		return matchObject(p, val, base)
	}
	return nil, diag.New(diag.TypeMismatch, "unsupported pattern")
}

func matchLiteral(p *ast.LiteralPattern, val value.Value, base *env.Environment) (*env.Environment, *diag.Error) {
	fv, err := value.Force(val)
	if err != nil {
		return nil, err
	}
	var litVal value.Value
	switch lit := p.Value.(type) {
	case *ast.IntLiteral:
		litVal = value.Int{Value: lit.Value}
	case *ast.FloatLiteral:
		litVal = value.Float{Value: lit.Value}
	case *ast.BoolLiteral:
		litVal = value.BoolOf(lit.Value)
	case *ast.NullLiteral:
		litVal = value.Nil
	case *ast.SymbolLiteral:
		litVal = value.Symbol{Name: lit.Name}
	case *ast.StringLiteral:
		litVal = value.Str{Value: lit.Value}
	default:
		return nil, diag.New(diag.TypeMismatch, "unsupported literal pattern").At(loc(p.Position))
	}
	eq, eerr := value.Equal(fv, litVal)
	if eerr != nil {
		return nil, eerr
	}
	if !eq {
		e := diag.New(diag.TypeMismatch, "expected %s, found %s", describeValue(litVal), describeValue(fv))
		e.Operation = "destructuring"
		return nil, e.At(loc(p.Position))
	}
	return base, nil
}

func matchTuple(p *ast.TuplePattern, val value.Value, base *env.Environment) (*env.Environment, *diag.Error) {
	fv, err := value.Force(val)
	if err != nil {
		return nil, err
	}
	tup, ok := fv.(*value.Tuple)
	if !ok || len(tup.Elements) != len(p.Elements) {
		found := describeValue(fv)
		if ok {
			found = fmt.Sprintf("tuple of arity %d", len(tup.Elements))
		}
		e := diag.New(diag.TypeMismatch, "expected tuple of arity %d, found %s", len(p.Elements), found)
		e.Operation = "destructuring"
		return nil, e.At(loc(p.Position))
	}
	cur := base
	for i, elemPat := range p.Elements {
		var err *diag.Error
		cur, err = Match(elemPat, tup.Elements[i], cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func matchArray(p *ast.ArrayPattern, val value.Value, base *env.Environment) (*env.Environment, *diag.Error) {
	fv, err := value.Force(val)
	if err != nil {
		return nil, err
	}
	arr, ok := fv.(*value.Array)
	if !ok {
		e := diag.New(diag.TypeMismatch, "expected array, found %s", describeValue(fv))
		e.Operation = "destructuring"
		return nil, e.At(loc(p.Position))
	}
	minLen := len(p.Elements)
	if !p.HasRest && len(arr.Elements) != minLen {
		e := diag.New(diag.TypeMismatch, "expected array of length %d, found length %d", minLen, len(arr.Elements))
		e.Operation = "destructuring"
		return nil, e.At(loc(p.Position))
	}
	if p.HasRest && len(arr.Elements) < minLen {
		e := diag.New(diag.TypeMismatch, "expected array of at least length %d, found length %d", minLen, len(arr.Elements))
		e.Operation = "destructuring"
		return nil, e.At(loc(p.Position))
	}
	cur := base
	for i, elemPat := range p.Elements {
		cur, err = Match(elemPat, arr.Elements[i], cur)
		if err != nil {
			return nil, err
		}
	}
	if p.HasRest {
		rest := append([]value.Value{}, arr.Elements[minLen:]...)
		cur = env.Extend(cur, p.Rest, &value.Array{Elements: rest})
	}
	return cur, nil
}

func matchObject(p *ast.ObjectPattern, val value.Value, base *env.Environment) (*env.Environment, *diag.Error) {
	fv, err := value.Force(val)
	if err != nil {
		return nil, err
	}
	obj, ok := fv.(*value.Object)
	if !ok {
		e := diag.New(diag.TypeMismatch, "expected object, found %s", describeValue(fv))
		e.Operation = "destructuring"
		return nil, e.At(loc(p.Position))
	}
	cur := base
	for _, pf := range p.Fields {
		field, found := obj.Get(pf.Key)
		if !found {
			e := diag.New(diag.TypeMismatch, "expected key %q, available: %s", pf.Key, diag.FirstN(obj.Names(), 10))
			e.Operation = "destructuring"
			e.Expected = pf.Key
			e.Available = diag.AvailableFields(obj.Names(), 10)
			return nil, e.At(loc(pf.KeyPos))
		}
		// "force the field's value before recursing" (spec §4.1).
		fieldVal, ferr := value.Force(field.Value)
		if ferr != nil {
			return nil, ferr
		}
		cur, err = Match(pf.Nested, fieldVal, cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func loc(pos ast.Position) diag.Location {
	return diag.Location{Line: pos.Line, Column: pos.Column}
}

func describeValue(v value.Value) string {
	fv, err := value.Force(v)
	if err != nil {
		return "error"
	}
	return fv.Kind().String()
}
