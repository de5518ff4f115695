package value

import "github.com/lumenlang/lumen/internal/diag"

// Merge implements spec §4.6: a new object combining base and
// extension field-by-field. For each base field, if extension defines
// the same key:
//   - if that extension field is patch-flagged and both (forced)
//     values are objects, the fields recursively merge and the result
//     is emitted non-patch;
//   - otherwise the extension field wins outright, keeping its own
//     patch flag (spec's open question #1: a patch-flagged extension
//     field over a non-object base wins verbatim).
// Fields only present in extension are appended afterward, in
// extension order. The extension's Doc wins if non-empty.
func Merge(base, ext *Object) (*Object, *diag.Error) {
	extIndex := make(map[string]*Field, len(ext.Fields))
	for _, f := range ext.Fields {
		if _, ok := extIndex[f.Name]; !ok {
			extIndex[f.Name] = f
		}
	}

	result := make([]*Field, 0, len(base.Fields)+len(ext.Fields))
	seen := make(map[string]bool, len(base.Fields))

	for _, bf := range base.Fields {
		seen[bf.Name] = true
		ef, present := extIndex[bf.Name]
		if !present {
			result = append(result, bf)
			continue
		}
		if ef.IsPatch {
			baseVal, err := Force(bf.Value)
			if err != nil {
				return nil, err
			}
			extVal, err := Force(ef.Value)
			if err != nil {
				return nil, err
			}
			baseObj, baseIsObj := baseVal.(*Object)
			extObj, extIsObj := extVal.(*Object)
			if baseIsObj && extIsObj {
				merged, err := Merge(baseObj, extObj)
				if err != nil {
					return nil, err
				}
				result = append(result, &Field{Name: bf.Name, Value: merged, IsPatch: false})
				continue
			}
			// Non-object on either side: extension wins verbatim.
			result = append(result, &Field{Name: ef.Name, Value: ef.Value, IsPatch: ef.IsPatch})
			continue
		}
		result = append(result, &Field{Name: ef.Name, Value: ef.Value, IsPatch: ef.IsPatch})
	}

	for _, ef := range ext.Fields {
		if seen[ef.Name] {
			continue
		}
		seen[ef.Name] = true
		result = append(result, ef)
	}

	doc := base.Doc
	if ext.Doc != "" {
		doc = ext.Doc
	}
	return &Object{Fields: result, Doc: doc}, nil
}
