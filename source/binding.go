/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

package source

// Operation names one logical CRUD operation.
type Operation string

const (
	OpCreate  Operation = "create"
	OpRead    Operation = "read"
	OpUpdate  Operation = "update"
	OpDestroy Operation = "destroy"
	OpQuery   Operation = "query"
	OpCopy    Operation = "copy"
	OpMerge   Operation = "merge"
	OpMove    Operation = "move"

	// OpCall is the generic named-command operation of the RPC source.
	OpCall Operation = "call"
)

// Binding maps logical operation names to concrete remote method names.
// UpdateBatch is the optional batch-update method; empty disables it.
type Binding struct {
	Create      string
	Read        string
	Update      string
	Destroy     string
	Query       string
	Copy        string
	Merge       string
	Move        string
	UpdateBatch string
}

// DefaultBinding binds each operation to its logical name. Protocol
// specializations replace this with their own literals.
func DefaultBinding() Binding {
	return Binding{
		Create:  "create",
		Read:    "read",
		Update:  "update",
		Destroy: "destroy",
		Query:   "query",
		Copy:    "copy",
		Merge:   "merge",
		Move:    "move",
	}
}

// Method returns the remote method bound to an operation.
func (b Binding) Method(op Operation) string {
	switch op {
	case OpCreate:
		return b.Create
	case OpRead:
		return b.Read
	case OpUpdate:
		return b.Update
	case OpDestroy:
		return b.Destroy
	case OpQuery:
		return b.Query
	case OpCopy:
		return b.Copy
	case OpMerge:
		return b.Merge
	case OpMove:
		return b.Move
	default:
		return ""
	}
}

// ApplyPreset overlays a logical-name to method-name preset, as registered
// in the binding registry, onto the binding. Unknown keys are ignored.
func (b Binding) ApplyPreset(preset map[string]string) Binding {
	for op, method := range preset {
		switch Operation(op) {
		case OpCreate:
			b.Create = method
		case OpRead:
			b.Read = method
		case OpUpdate:
			b.Update = method
		case OpDestroy:
			b.Destroy = method
		case OpQuery:
			b.Query = method
		case OpCopy:
			b.Copy = method
		case OpMerge:
			b.Merge = method
		case OpMove:
			b.Move = method
		case "updateBatch":
			b.UpdateBatch = method
		}
	}
	return b
}
