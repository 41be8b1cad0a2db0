package gas

// DefaultSyscallTable returns the base gas cost for the syscalls a
// NEO-style contract commonly invokes. Names follow the
// "<Namespace>.<Service>" convention used throughout
// other_examples/d4c65f74_qiluge-ontology__smartcontract-service-neovm-neovm_service.go.go
// (STORAGE_PUT_NAME, RUNTIME_CHECKWITNESS_NAME, etc., there expressed
// as Go constants; here as the dotted strings a SYSCALL instruction's
// operand actually encodes, e.g. "Neo.Storage.Put").
//
// This table only supplies *base* costs; the Storage.Put payload-size
// multiplier is applied by ComputeOpCost, not baked in here (spec.md
// §4.2 treats the multiplier as a property of the call site, not the
// table entry).
func DefaultSyscallTable() SyscallTable {
	return SyscallTable{
		"Neo.Storage.Get":                FromMilliUnits(100),
		"Neo.Storage.Put":                One(),
		"Neo.Storage.Delete":             FromMilliUnits(100),
		"Neo.Storage.GetContext":         costDefault,
		"Neo.Storage.GetReadOnlyContext": costDefault,
		"Neo.Runtime.CheckWitness":       FromMilliUnits(200),
		"Neo.Runtime.GetTrigger":         costDefault,
		"Neo.Runtime.GetTime":            costDefault,
		"Neo.Runtime.Notify":             FromMilliUnits(1),
		"Neo.Runtime.Log":                FromMilliUnits(1),
		"Neo.Blockchain.GetHeight":       costDefault,
		"Neo.Blockchain.GetHeader":       FromMilliUnits(100),
		"Neo.Blockchain.GetBlock":        FromMilliUnits(200),
		"Neo.Blockchain.GetTransaction":  FromMilliUnits(100),
		"Neo.Contract.Create":            FromMilliUnits(500000),
		"Neo.Contract.Destroy":           FromMilliUnits(1),
		"Neo.Contract.GetScript":         costDefault,
	}
}
