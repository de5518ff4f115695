package value

// Result-tuple convention helpers (SPEC_FULL §3): fallible builtins
// return either a 2-tuple (#ok, value) / (#error, message), or a bare
// sentinel symbol such as #outOfBounds / #noSuchKey.
func Ok(v Value) Value {
	return &Tuple{Elements: []Value{Symbol{Name: "ok"}, v}}
}

func Err(message string) Value {
	return &Tuple{Elements: []Value{Symbol{Name: "error"}, Str{Value: message}}}
}

var (
	SentinelOutOfBounds = Symbol{Name: "outOfBounds"}
	SentinelNoSuchKey   = Symbol{Name: "noSuchKey"}
)
