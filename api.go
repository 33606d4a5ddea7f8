package logo

// Interpreter wires every component store (Memory, Variables,
// Properties, ProcedureTable, FrameArena, PrimitiveRegistry) and the
// Host capability set into one Evaluator, the single aggregate an
// embedder constructs and drives.
type Interpreter struct {
	Mem    *Memory
	Vars   *Variables
	Props  *Properties
	Procs  *ProcedureTable
	Frames *FrameArena
	Prims  *PrimitiveRegistry
	Host   Host
	Config *Config
	Eval   *Evaluator
}

// NewInterpreter builds an Interpreter from cfg's sizing constants and
// the given Host.
func NewInterpreter(cfg *Config, host Host) *Interpreter {
	mem := NewMemory(cfg.GetInt("memory.pool_cells"), cfg.GetInt("memory.atom_bytes"))
	vars := NewVariables(cfg.GetInt("variables.max_globals"), cfg.GetInt("variables.max_locals"), cfg.GetInt("variables.max_scope_depth"))
	props := NewProperties()
	procs := NewProcedureTable(cfg.GetInt("procedures.max_count"))
	frames := NewFrameArena(cfg.GetInt("frames.max_depth"), cfg.GetInt("frames.max_bindings"), cfg.GetInt("frames.max_values"))
	prims := NewCorePrimitiveRegistry()
	ev := NewEvaluator(mem, vars, props, procs, frames, prims, host, cfg)
	return &Interpreter{
		Mem: mem, Vars: vars, Props: props, Procs: procs,
		Frames: frames, Prims: prims, Host: host, Config: cfg, Eval: ev,
	}
}

// EvalText runs text (one or more instructions, e.g. a REPL line) as
// code, starting a fresh Lexer-backed TokenSource over it.
func (in *Interpreter) EvalText(text []byte) Result {
	lex := NewLexer(text, ModeCode)
	return in.Eval.RunList(NewLexerTokenSource(lex), false)
}

// DefineProcedure installs a procedure from a `to`/`end` block's
// header and body text, refusing to shadow a primitive.
func (in *Interpreter) DefineProcedure(header, body []byte) (*Procedure, Result) {
	return in.Procs.DefineFromText(in.Mem, header, body, in.Config.GetInt("procedures.max_params"), in.Prims.Exists)
}

// GC runs one mark-sweep pass rooted at every live global, property,
// frame and procedure-body reference.
func (in *Interpreter) GC() {
	in.Mem.GC(in.gcRoots())
}

func (in *Interpreter) gcRoots() GCRoots {
	var nodes []Node
	collect := func(values []Value) {
		for _, v := range values {
			if v.Kind == ValueWord || v.Kind == ValueList {
				nodes = append(nodes, v.Node)
			}
		}
	}
	collect(in.Vars.GCRootValues())
	collect(in.Props.GCRootValues())
	fvalues, fnodes := in.Frames.GCRootValues()
	collect(fvalues)
	nodes = append(nodes, fnodes...)
	for i := 0; i < in.Procs.Count(); i++ {
		if p, ok := in.Procs.At(i); ok {
			nodes = append(nodes, p.Body)
		}
	}
	return GCRoots{Nodes: nodes}
}
