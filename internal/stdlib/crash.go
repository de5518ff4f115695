package stdlib

import (
	"github.com/lumenlang/lumen/internal/diag"
	"github.com/lumenlang/lumen/internal/value"
)

// evaluatorHandle is the minimal surface stdlib needs from *eval.Evaluator,
// expressed as an interface so this package doesn't import internal/eval
// (internal/eval's module loader already depends on stdlib indirectly
// through the driver-supplied NewRootEnv callback; an eval import here
// would close that into a cycle).
type evaluatorHandle interface {
	SetCrashMessage(string)
}

// crashField implements spec.md §6's crash(message) native, wired to
// the process-scoped user-crash-message slot (spec §5: "a last-resort
// single-slot allocated from a long-lived allocator so it survives
// arena release").
func crashField(ev evaluatorHandle) *value.Field {
	return native("crash", func(arg value.Value, _ value.ApplyFunc) (value.Value, *diag.Error) {
		msg, err := asString(arg)
		if err != nil {
			return nil, err
		}
		ev.SetCrashMessage(msg)
		e := diag.New(diag.UserCrash, "%s", msg)
		return nil, e
	})
}
