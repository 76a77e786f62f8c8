// Package runtime exposes the Core IL Runtime's external interface
// (spec §6) as a name-keyed registry of native functions, the same
// registerGlobal/NativeFnObj shape the teacher's VM uses to expose its
// standard library to compiled bytecode (internal/vmregister/stdlib.go).
package runtime

import (
	"io"

	"coreil/internal/rterrors"
	"coreil/internal/rtlog"
	"coreil/internal/value"
)

// NativeFunc is one entry of the registry: a name, a fixed arity (-1 for
// variadic), and the Go closure that implements it.
type NativeFunc struct {
	Name  string
	Arity int
	Fn    func(args []value.Value) (value.Value, error)
}

// Registry is the full set of operations a compiled program can invoke.
// It is not safe for concurrent use from multiple goroutines, matching
// the single-threaded execution model of spec §5.
type Registry struct {
	funcs map[string]*NativeFunc
	log   *rtlog.Logger
	out   io.Writer
}

// New builds a Registry with every built-in operation registered and
// print() wired to out.
func New(out io.Writer) *Registry {
	r := &Registry{
		funcs: make(map[string]*NativeFunc),
		log:   rtlog.New("runtime"),
		out:   out,
	}
	r.registerCore()
	r.registerContainers()
	r.registerStringsAndMath()
	r.registerJSONAndRegex()
	return r
}

// SetTrace turns on per-call tracing, routed through rtlog to stderr.
func (r *Registry) SetTrace(on bool) { r.log.SetTrace(on) }

func (r *Registry) register(name string, arity int, fn func([]value.Value) (value.Value, error)) {
	r.funcs[name] = &NativeFunc{Name: name, Arity: arity, Fn: fn}
}

// Call dispatches name with args, checking arity before invoking the
// registered closure. Unknown names fail as Unsupported.
func (r *Registry) Call(name string, args []value.Value) (value.Value, error) {
	done := r.log.Trace(name)
	defer done()

	nf, ok := r.funcs[name]
	if !ok {
		return nil, rterrors.Newf(rterrors.Unsupported, name, "unknown operation %q", name)
	}
	if nf.Arity >= 0 && len(args) != nf.Arity {
		return nil, rterrors.Newf(rterrors.TypeMismatch, name, "expected %d argument(s), got %d", nf.Arity, len(args))
	}
	return nf.Fn(args)
}

// Has reports whether name is a registered operation.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns every registered operation name, for diagnostics and the
// CLI's `ops` subcommand.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for n := range r.funcs {
		names = append(names, n)
	}
	return names
}
