// Package common holds the small cross-cutting types and sentinel errors
// shared by every other package in this module: the debugger state
// machine's error kinds, the argument tree's node kinds, and the VM
// execution trigger/witness enums.
package common

import "errors"

// Error kinds from spec.md §7. BytecodeMissing and UnsupportedParamKind
// are fatal to the call that raised them; VmFault is reified into
// DebuggerState.Exception rather than returned; IntrospectionFailure is
// never returned at all, it is swallowed at the documented sites.
var (
	// ErrBytecodeMissing is returned by Reset when no executing account
	// has been bound yet.
	ErrBytecodeMissing = errors.New("neovm-debugger: bytecode missing, call SetExecutingAccount before Reset")

	// ErrUnsupportedParamKind is returned by the argument marshaller when
	// a converted value has no corresponding stack-push emission.
	ErrUnsupportedParamKind = errors.New("neovm-debugger: unsupported parameter kind")

	// ErrVmFault names a session-ending VM fault. Step and Run never
	// return it: a fault is reported as an Exception DebuggerState,
	// which carries only the kind and the last offset, not this error.
	ErrVmFault = errors.New("neovm-debugger: vm fault")
)
