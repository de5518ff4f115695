package value

import "github.com/lumenlang/lumen/internal/diag"

// Equal implements spec §4.3 "Equality": structurally recursive,
// forcing both operands first. Functions and native functions always
// compare unequal (spec §9, design note 4). Objects compare by
// permutation-insensitive field-by-field equality; arrays/tuples
// compare by length and element order.
func Equal(a, b Value) (bool, *diag.Error) {
	fa, err := Force(a)
	if err != nil {
		return false, err
	}
	fb, err := Force(b)
	if err != nil {
		return false, err
	}
	return equalForced(fa, fb)
}

func equalForced(a, b Value) (bool, *diag.Error) {
	switch av := a.(type) {
	case Int:
		switch bv := b.(type) {
		case Int:
			return av.Value == bv.Value, nil
		case Float:
			return float64(av.Value) == bv.Value, nil
		}
		return false, nil
	case Float:
		switch bv := b.(type) {
		case Int:
			return av.Value == float64(bv.Value), nil
		case Float:
			return av.Value == bv.Value, nil
		}
		return false, nil
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value, nil
	case Null:
		_, ok := b.(Null)
		return ok, nil
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av.Name == bv.Name, nil
	case Str:
		bv, ok := b.(Str)
		return ok && av.Value == bv.Value, nil
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false, nil
		}
		for i := range av.Elements {
			eq, err := Equal(av.Elements[i], bv.Elements[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case *Tuple:
		bv, ok := b.(*Tuple)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false, nil
		}
		for i := range av.Elements {
			eq, err := Equal(av.Elements[i], bv.Elements[i])
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false, nil
		}
		for _, f := range av.Fields {
			of, ok := bv.Get(f.Name)
			if !ok {
				return false, nil
			}
			eq, err := Equal(f.Value, of.Value)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case Range:
		bv, ok := b.(Range)
		return ok && av.Start == bv.Start && av.End == bv.End && av.Inclusive == bv.Inclusive, nil
	case *Function, *Native:
		return false, nil
	}
	return false, nil
}
