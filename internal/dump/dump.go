// Package dump renders an evaluation stack or a variable map as a
// table, for use in test failure output only — spec.md §6 keeps this
// module a library with no CLI, so nothing here runs outside a test
// binary's -v output.
package dump

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"

	"github.com/probeum/neovm-debugger/stackitem"
	"github.com/probeum/neovm-debugger/variable"
)

// Stack renders depth, kind, and string value for each item on s, from
// top of stack down, as a table.
func Stack(s interface {
	Count() int
	Peek(int) (stackitem.Item, bool)
}) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"depth", "kind", "value"})
	for i := 0; i < s.Count(); i++ {
		item, ok := s.Peek(i)
		if !ok {
			break
		}
		table.Append([]string{fmt.Sprintf("%d", i), item.Kind().String(), item.String()})
	}
	table.Render()
	return buf.String()
}

// Variables renders a variable tracker's current name→value map.
// Values that a table can't render cleanly (nested arrays) fall back
// to spew's recursive formatter.
func Variables(vars map[string]variable.Value) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"name", "type", "value"})
	for name, v := range vars {
		value := v.Item.String()
		if v.Item.Kind() == stackitem.KindArray {
			value = spew.Sdump(v.Item)
		}
		table.Append([]string{name, v.Type.String(), value})
	}
	table.Render()
	return buf.String()
}
