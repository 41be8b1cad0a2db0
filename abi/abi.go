// Package abi declares the ABI shape the emulator facade consumes
// (spec.md §6: "An ABI object with entry_point: {name, inputs:
// [{name, declared_type}]} and a functions table"). Parsing an ABI
// document is an external collaborator's job (spec.md §1); this
// package only names the in-memory shape Reset and the Variable
// Tracker read from.
package abi

import "github.com/probeum/neovm-debugger/stackitem"

// Input is one entry-point parameter's name and declared stack_item
// type, consumed by the Variable Tracker's entry-point seeding
// (spec.md §4.3).
type Input struct {
	Name         string
	DeclaredType stackitem.Kind
}

// EntryPoint names the contract's callable entry function and its
// typed inputs, in declared order.
type EntryPoint struct {
	Name   string
	Inputs []Input
}

// Function describes one callable contract function, keyed by name in
// ABI.Functions.
type Function struct {
	Name   string
	Inputs []Input
}

// ABI is the subset of a parsed application binary interface the
// emulator needs: the entry point plus a lookup table of the
// contract's other callable functions.
type ABI struct {
	EntryPoint EntryPoint
	Functions  map[string]Function
}
