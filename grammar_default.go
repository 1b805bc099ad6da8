package confparse

// DefaultGrammar is a concrete, representative grammar covering a
// subset of a tiling window manager's directives: workspace, exec,
// set, bindsym/bindcode, and nested mode{} / bar{} blocks, plus
// `#`-comment handling via a literal followed by a line token.
// It exists to be exercised by the test suite and is not meant as an
// exhaustive window-manager grammar; callers with their own directive
// set build their own Grammar with NewGrammar the same way.
func DefaultGrammar() *Grammar {
	b := NewGrammar()

	b.State(Initial,
		Literal("workspace").To(stateWorkspaceArg),
		Literal("exec").To(stateExecArg),
		Literal("set").To(stateSetName),
		Literal("bindsym").To(stateBindsymKey),
		Literal("bindcode").To(stateBindcodeKey),
		Literal("mode").To(stateModeName),
		Literal("bar").To(stateBarOpen),
		Literal("#").To(stateCommentInitial),
		End().To(Initial),
		ErrorToken().To(Initial),
	)

	b.State(stateWorkspaceArg,
		Num("num").ToCall(callSetWorkspace),
	)

	b.State(stateExecArg,
		Str("cmd").ToCall(callExecCommand),
	)

	b.State(stateSetName,
		Word("name").To(stateSetValue),
	)
	b.State(stateSetValue,
		Line("value").ToCall(callSetVariable),
	)

	b.State(stateBindsymKey,
		Word("key").To(stateBindsymCmd),
	)
	b.State(stateBindsymCmd,
		Line("cmd").ToCall(callBindSymbolic),
	)

	b.State(stateBindcodeKey,
		Word("code").To(stateBindcodeCmd),
	)
	b.State(stateBindcodeCmd,
		Line("cmd").ToCall(callBindCode),
	)

	b.State(stateCommentInitial,
		Line("").To(Initial),
	)

	// mode "name" { ... }
	b.State(stateModeName,
		Str("name").To(stateModeOpen),
	)
	b.State(stateModeOpen,
		Literal("{").ToCall(callEnterMode),
	)
	b.State(stateMode,
		Literal("bindsym").To(stateModeBindsymKey),
		Literal("bindcode").To(stateModeBindcodeKey),
		Literal("#").To(stateCommentMode),
		Literal("}").ToCall(callExitMode),
		End().To(stateMode),
		ErrorToken().To(stateMode),
	)
	b.State(stateModeBindsymKey,
		Word("key").To(stateModeBindsymCmd),
	)
	b.State(stateModeBindsymCmd,
		Line("cmd").ToCall(callBindSymbolicInMode),
	)
	b.State(stateModeBindcodeKey,
		Word("code").To(stateModeBindcodeCmd),
	)
	b.State(stateModeBindcodeCmd,
		Line("cmd").ToCall(callBindCodeInMode),
	)
	b.State(stateCommentMode,
		Line("").To(stateMode),
	)

	// bar { ... }
	b.State(stateBarOpen,
		Literal("{").ToCall(callEnterBar),
	)
	b.State(stateBar,
		Literal("position").To(stateBarPosition),
		Literal("status_command").To(stateBarStatusCommand),
		Literal("#").To(stateCommentBar),
		Literal("}").ToCall(callExitBar),
		End().To(stateBar),
		ErrorToken().To(stateBar),
	)
	b.State(stateBarPosition,
		Word("pos").ToCall(callSetBarPosition),
	)
	b.State(stateBarStatusCommand,
		Line("cmd").ToCall(callSetBarStatusCommand),
	)
	b.State(stateCommentBar,
		Line("").To(stateBar),
	)

	return b.Build()
}

const (
	stateWorkspaceArg State = "WORKSPACE_ARG"
	stateExecArg      State = "EXEC_ARG"

	stateSetName  State = "SET_NAME"
	stateSetValue State = "SET_VALUE"

	stateBindsymKey  State = "BINDSYM_KEY"
	stateBindsymCmd  State = "BINDSYM_CMD"
	stateBindcodeKey State = "BINDCODE_KEY"
	stateBindcodeCmd State = "BINDCODE_CMD"

	stateCommentInitial State = "COMMENT_INITIAL"

	stateModeName State = "MODE_NAME"
	stateModeOpen State = "MODE_OPEN"
	stateMode     State = "MODE"

	stateModeBindsymKey  State = "MODE_BINDSYM_KEY"
	stateModeBindsymCmd  State = "MODE_BINDSYM_CMD"
	stateModeBindcodeKey State = "MODE_BINDCODE_KEY"
	stateModeBindcodeCmd State = "MODE_BINDCODE_CMD"
	stateCommentMode     State = "COMMENT_MODE"

	stateBarOpen          State = "BAR_OPEN"
	stateBar              State = "BAR"
	stateBarPosition      State = "BAR_POSITION"
	stateBarStatusCommand State = "BAR_STATUS_COMMAND"
	stateCommentBar       State = "COMMENT_BAR"
)

const (
	callSetWorkspace        CallID = "set_workspace"
	callExecCommand         CallID = "exec_command"
	callSetVariable         CallID = "set_variable"
	callBindSymbolic        CallID = "bind_symbolic"
	callBindCode            CallID = "bind_code"
	callEnterMode           CallID = "enter_mode"
	callExitMode            CallID = "exit_mode"
	callBindSymbolicInMode  CallID = "bind_symbolic_in_mode"
	callBindCodeInMode      CallID = "bind_code_in_mode"
	callEnterBar            CallID = "enter_bar"
	callExitBar             CallID = "exit_bar"
	callSetBarPosition      CallID = "set_bar_position"
	callSetBarStatusCommand CallID = "set_bar_status_command"
)
