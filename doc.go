// Package confparse implements a table-driven, hand-written lexer-parser
// for the textual configuration language of a tiling window manager.
//
// A grammar is a closed set of states, each holding an ordered list of
// token descriptors. The driver tries each descriptor in a state's table,
// in order, against the current cursor; the first match wins, consumes
// input, optionally captures a value, and transitions to the descriptor's
// target state. Transitions to the __CALL sentinel invoke a semantic
// handler looked up by name in a caller-supplied HandlerSet; the handler
// reads captured values and may redirect the next state.
//
// Unmatched input never aborts the parse: the reporter emits a
// diagnostic and the recovery engine walks the state trail backwards to
// the nearest state whose table admits an <error> descriptor, resuming
// at the next line.
//
//	const stateWorkspaceArg State = "WORKSPACE_ARG"
//
//	g := NewGrammar().
//		State(Initial,
//			Literal("workspace").To(stateWorkspaceArg),
//			End().To(Initial),
//			ErrorToken().To(Initial),
//		).
//		State(stateWorkspaceArg,
//			Num("num").ToCall("set_workspace"),
//			ErrorToken().To(Initial),
//		).
//		Build()
//
//	handlers := HandlerSet{
//		"set_workspace": func(h *Handler) State {
//			out := h.Out.(*myOutput)
//			out.WorkspaceNum = h.GetLong("num")
//			return Initial
//		},
//	}
//
//	ctx := NewParseContext("config")
//	ctx.Out = &myOutput{}
//	result, err := Parse([]byte("workspace 5\n"), ctx, g, handlers)
package confparse
