package stdlib

import (
	"github.com/lumenlang/lumen/internal/config"
	"github.com/lumenlang/lumen/internal/env"
	"github.com/lumenlang/lumen/internal/value"
)

// NewRootEnv builds the environment every module (including the
// top-level program) starts from: the native-function registry plus
// the ten auto-imported stdlib modules, with Basics' fields additionally
// bound unqualified (spec.md §4.7).
func NewRootEnv(ev evaluatorHandle) *env.Environment {
	e := env.Empty()

	e = bindNative(e, crashField(ev))
	e = bindNative(e, jsonParseField())
	e = bindNative(e, jsonEncodeField())
	e = bindNative(e, yamlParseField())
	e = bindNative(e, yamlEncodeField())

	modules := map[string]*value.Object{
		"Array":  arrayModule(),
		"Basics": basicsModule(),
		"Float":  floatModule(),
		"Math":   mathModule(),
		"Object": objectModule(),
		"Range":  rangeModule(),
		"Result": resultModule(),
		"String": stringModule(),
		"Symbol": symbolModule(),
		"Tuple":  tupleModule(),
	}

	for _, name := range config.StdlibModules {
		e = env.Extend(e, name, modules[name])
	}

	basics := modules[config.BasicsModule]
	for _, f := range basics.Fields {
		e = env.Extend(e, f.Name, f.Value)
	}

	return e
}

func bindNative(e *env.Environment, f *value.Field) *env.Environment {
	return env.Extend(e, f.Name, f.Value)
}
