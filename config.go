package logo

import "fmt"

// Config is the typed configuration map of spec.md §6's tunable
// constants (pool sizes, depth ceilings, feature gates): the same
// path-keyed tagged-value map the teacher's grammar/compiler settings
// use, generalised from grammar/compiler paths to the interpreter's
// own.
type Config map[string]*cfgVal

// NewConfig returns a Config primed with spec.md §6's defaults.
func NewConfig() *Config {
	m := make(Config)
	m.SetInt("memory.pool_cells", 16384)
	m.SetInt("memory.atom_bytes", 65536)
	m.SetInt("variables.max_globals", DefaultMaxGlobalVariables)
	m.SetInt("variables.max_locals", DefaultMaxLocalVariables)
	m.SetInt("variables.max_scope_depth", DefaultMaxScopeDepth)
	m.SetInt("frames.max_depth", DefaultMaxFrameDepth)
	m.SetInt("frames.max_bindings", 4096)
	m.SetInt("frames.max_values", 4096)
	m.SetInt("procedures.max_count", 512)
	m.SetInt("procedures.max_params", 16)
	m.SetBool("eval.use_vm", false)
	m.SetInt("repl.max_line_length", 1024)
	m.SetInt("repl.max_proc_buffer", 8192)
	return &m
}

type cfgValType int

const (
	cfgValUndefined cfgValType = iota
	cfgValBool
	cfgValInt
	cfgValString
)

func (vt cfgValType) String() string {
	switch vt {
	case cfgValBool:
		return "bool"
	case cfgValInt:
		return "int"
	case cfgValString:
		return "string"
	default:
		return "undefined"
	}
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValUndefined {
		panic(fmt.Sprintf("can't assign %s to a %s config value", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't retrieve %s from a %s config value", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	val := &cfgVal{}
	val.assignType(cfgValBool)
	val.asBool = v
	(*c)[path] = val
}

func (c *Config) SetInt(path string, v int) {
	val := &cfgVal{}
	val.assignType(cfgValInt)
	val.asInt = v
	(*c)[path] = val
}

func (c *Config) SetString(path string, v string) {
	val := &cfgVal{}
	val.assignType(cfgValString)
	val.asString = v
	(*c)[path] = val
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValBool)
		return val.asBool
	}
	panic(fmt.Sprintf("bool setting %q does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValInt)
		return val.asInt
	}
	panic(fmt.Sprintf("int setting %q does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValString)
		return val.asString
	}
	panic(fmt.Sprintf("string setting %q does not exist", path))
}
