package confparse

// ConfigOutput is the semantic sink DefaultGrammar's handlers populate
// through Handler.Out. It is a representative accumulator, not the
// real window-manager state: a production caller would own its own
// state mutators; this type only exists so DefaultGrammar's dispatch
// has something concrete to exercise in tests.
type ConfigOutput struct {
	Workspace int64
	Commands  []string
	Variables map[string]string
	Bindings  []Binding
	Modes     map[string]*ModeOutput
	Bars      []*BarOutput

	currentMode *ModeOutput
	currentBar  *BarOutput
}

// Binding is one bindsym/bindcode pair captured either at top level or
// inside a mode block.
type Binding struct {
	Trigger string
	Command string
	ByCode  bool
}

// ModeOutput accumulates the bindings declared inside one `mode "name" { }`
// block.
type ModeOutput struct {
	Name     string
	Bindings []Binding
}

// BarOutput accumulates the directives declared inside one `bar { }`
// block.
type BarOutput struct {
	Position      string
	StatusCommand string
}

// NewConfigOutput returns a zeroed ConfigOutput ready to be installed
// as a ParseContext's Out field.
func NewConfigOutput() *ConfigOutput {
	return &ConfigOutput{
		Variables: make(map[string]string),
		Modes:     make(map[string]*ModeOutput),
	}
}

// DefaultHandlers returns the HandlerSet satisfying every CallID
// DefaultGrammar references. Each handler reaches its sink through
// Handler.Out, asserted to *ConfigOutput — the caller installs one on
// ParseContext.Out before calling Parse. set_variable records
// name/value pairs verbatim; it performs no `$name` substitution
// elsewhere in the input, since that preprocessing step happens
// outside this package entirely.
func DefaultHandlers() HandlerSet {
	return HandlerSet{
		callSetWorkspace: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			out.Workspace = h.GetLong("num")
			return Initial
		},
		callExecCommand: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			cmd, _ := h.GetString("cmd")
			out.Commands = append(out.Commands, cmd)
			return Initial
		},
		callSetVariable: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			name, _ := h.GetString("name")
			value, _ := h.GetString("value")
			out.Variables[name] = value
			return Initial
		},
		callBindSymbolic: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			key, _ := h.GetString("key")
			cmd, _ := h.GetString("cmd")
			out.Bindings = append(out.Bindings, Binding{Trigger: key, Command: cmd})
			return Initial
		},
		callBindCode: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			code, _ := h.GetString("code")
			cmd, _ := h.GetString("cmd")
			out.Bindings = append(out.Bindings, Binding{Trigger: code, Command: cmd, ByCode: true})
			return Initial
		},
		callEnterMode: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			name, _ := h.GetString("name")
			m := &ModeOutput{Name: name}
			out.Modes[name] = m
			out.currentMode = m
			return stateMode
		},
		callExitMode: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			out.currentMode = nil
			return Initial
		},
		callBindSymbolicInMode: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			key, _ := h.GetString("key")
			cmd, _ := h.GetString("cmd")
			if out.currentMode != nil {
				out.currentMode.Bindings = append(out.currentMode.Bindings, Binding{Trigger: key, Command: cmd})
			}
			return stateMode
		},
		callBindCodeInMode: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			code, _ := h.GetString("code")
			cmd, _ := h.GetString("cmd")
			if out.currentMode != nil {
				out.currentMode.Bindings = append(out.currentMode.Bindings, Binding{Trigger: code, Command: cmd, ByCode: true})
			}
			return stateMode
		},
		callEnterBar: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			bar := &BarOutput{}
			out.Bars = append(out.Bars, bar)
			out.currentBar = bar
			return stateBar
		},
		callExitBar: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			out.currentBar = nil
			return Initial
		},
		callSetBarPosition: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			pos, _ := h.GetString("pos")
			if out.currentBar != nil {
				out.currentBar.Position = pos
			}
			return stateBar
		},
		callSetBarStatusCommand: func(h *Handler) State {
			out := h.Out.(*ConfigOutput)
			cmd, _ := h.GetString("cmd")
			if out.currentBar != nil {
				out.currentBar.StatusCommand = cmd
			}
			return stateBar
		},
	}
}
