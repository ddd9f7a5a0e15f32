// Package pulse simulates a network of communication modules exchanging
// high and low pulses.
//
// Module kinds:
//
//	broadcaster  forwards every pulse to all its outputs
//	%name        flip-flop: ignores high pulses; a low pulse toggles it and
//	             it sends high when turned on, low when turned off
//	&name        conjunction: remembers the last pulse from each input
//	             (initially low) and sends low only when all are high
//
// Names that appear only as destinations are sinks: they receive pulses and
// send nothing. Pressing the button sends one low pulse to the broadcaster;
// pulses are delivered in the order they were sent.
package pulse

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pulse networks.
var (
	// ErrMalformedInput indicates an unparseable module line, a duplicate
	// module or a missing broadcaster.
	ErrMalformedInput = errors.New("pulse: malformed input")
	// ErrUnknownModule indicates a name that no line declares or targets.
	ErrUnknownModule = errors.New("pulse: unknown module")
	// ErrNoFeeder indicates the target is not fed by exactly one conjunction.
	ErrNoFeeder = errors.New("pulse: target is not fed by a single conjunction")
	// ErrNoCycle indicates the press limit ran out before an answer emerged.
	ErrNoCycle = errors.New("pulse: no answer within press limit")
)

// Broadcaster is the name of the module the button is wired to.
const Broadcaster = "broadcaster"

// Kind is the closed set of module behaviors.
type Kind uint8

const (
	// Sink receives pulses and sends nothing.
	Sink Kind = iota
	// Broadcast forwards every pulse unchanged.
	Broadcast
	// FlipFlop toggles on low pulses and ignores high ones ('%').
	FlipFlop
	// Conjunction sends low only when every input last sent high ('&').
	Conjunction
)

// String returns the kind's input prefix, or its name for prefix-less kinds.
func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "%"
	case Conjunction:
		return "&"
	default:
		return "sink"
	}
}

// Pulse is one delivery between two modules.
type Pulse struct {
	From, To string
	High     bool
}

// edge routes a pulse to module to, into its input slot.
type edge struct {
	to, slot int
}

type module struct {
	name    string
	kind    Kind
	outputs []edge
	inputs  []int
}

// Network is the immutable wiring of a module network. One Network can back
// any number of Machines.
type Network struct {
	modules     []module
	index       map[string]int
	broadcaster int
}

// Parse reads one "name -> a, b" line per module.
func Parse(text string) (*Network, error) {
	n := &Network{index: make(map[string]int)}
	type decl struct {
		id      int
		targets []string
	}
	var decls []decl

	// 1) Declare every module named on the left-hand side.
	for lineNo, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhs, rhs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing \"->\"", ErrMalformedInput, lineNo+1)
		}
		lhs = strings.TrimSpace(lhs)
		kind := Broadcast
		switch {
		case strings.HasPrefix(lhs, "%"):
			kind, lhs = FlipFlop, lhs[1:]
		case strings.HasPrefix(lhs, "&"):
			kind, lhs = Conjunction, lhs[1:]
		case lhs != Broadcaster:
			return nil, fmt.Errorf("%w: line %d: module %q has no kind prefix", ErrMalformedInput, lineNo+1, lhs)
		}
		if lhs == "" {
			return nil, fmt.Errorf("%w: line %d: empty module name", ErrMalformedInput, lineNo+1)
		}
		if _, dup := n.index[lhs]; dup {
			return nil, fmt.Errorf("%w: line %d: module %q declared twice", ErrMalformedInput, lineNo+1, lhs)
		}

		var targets []string
		for _, t := range strings.Split(rhs, ",") {
			if t = strings.TrimSpace(t); t != "" {
				targets = append(targets, t)
			}
		}
		decls = append(decls, decl{id: n.add(lhs, kind), targets: targets})
	}
	b, ok := n.index[Broadcaster]
	if !ok {
		return nil, fmt.Errorf("%w: no %s", ErrMalformedInput, Broadcaster)
	}
	n.broadcaster = b

	// 2) Wire outputs, creating sinks for undeclared destinations.
	for _, d := range decls {
		for _, t := range d.targets {
			to, ok := n.index[t]
			if !ok {
				to = n.add(t, Sink)
			}
			slot := len(n.modules[to].inputs)
			n.modules[to].inputs = append(n.modules[to].inputs, d.id)
			n.modules[d.id].outputs = append(n.modules[d.id].outputs, edge{to: to, slot: slot})
		}
	}

	return n, nil
}

func (n *Network) add(name string, kind Kind) int {
	id := len(n.modules)
	n.modules = append(n.modules, module{name: name, kind: kind})
	n.index[name] = id

	return id
}

// Len returns the number of modules, sinks included.
func (n *Network) Len() int { return len(n.modules) }

// Kind returns the kind of the named module.
func (n *Network) Kind(name string) (Kind, error) {
	id, err := n.lookup(name)
	if err != nil {
		return Sink, err
	}

	return n.modules[id].kind, nil
}

// Inputs returns the names of the modules that send to name, in wiring order.
func (n *Network) Inputs(name string) ([]string, error) {
	id, err := n.lookup(name)
	if err != nil {
		return nil, err
	}

	return n.names(n.modules[id].inputs), nil
}

func (n *Network) lookup(name string) (int, error) {
	id, ok := n.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModule, name)
	}

	return id, nil
}

func (n *Network) names(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = n.modules[id].name
	}

	return out
}
