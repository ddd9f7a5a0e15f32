package pulse

// Machine is the mutable state of one Network: flip-flop switches and
// conjunction memories. A Machine is not safe for concurrent use.
type Machine struct {
	net     *Network
	on      []bool   // flip-flop state per module
	memory  [][]bool // conjunction memory per module, indexed by input slot
	highs   []int    // number of high slots per conjunction
	presses int
	queue   []delivery
}

type delivery struct {
	from, to, slot int
	high           bool
}

// NewMachine returns a Machine with every flip-flop off and every
// conjunction remembering low for all its inputs.
func NewMachine(n *Network) *Machine {
	m := &Machine{
		net:    n,
		on:     make([]bool, len(n.modules)),
		memory: make([][]bool, len(n.modules)),
		highs:  make([]int, len(n.modules)),
	}
	for id, mod := range n.modules {
		if mod.kind == Conjunction {
			m.memory[id] = make([]bool, len(mod.inputs))
		}
	}

	return m
}

// Presses returns how many times the button has been pressed.
func (m *Machine) Presses() int { return m.presses }

// Press pushes the button once and delivers pulses until the network is
// quiet. observe, when non-nil, sees every pulse in delivery order,
// starting with the button's low pulse to the broadcaster.
// It returns the number of low and high pulses delivered.
func (m *Machine) Press(observe func(Pulse)) (low, high int) {
	m.presses++
	const button = -1
	m.queue = append(m.queue[:0], delivery{from: button, to: m.net.broadcaster})

	for qi := 0; qi < len(m.queue); qi++ {
		d := m.queue[qi]
		if d.high {
			high++
		} else {
			low++
		}
		if observe != nil {
			from := "button"
			if d.from != button {
				from = m.net.modules[d.from].name
			}
			observe(Pulse{From: from, To: m.net.modules[d.to].name, High: d.high})
		}

		send, out := m.receive(d)
		if !send {
			continue
		}
		for _, e := range m.net.modules[d.to].outputs {
			m.queue = append(m.queue, delivery{from: d.to, to: e.to, slot: e.slot, high: out})
		}
	}

	return low, high
}

// receive applies d to its destination and reports whether it emits a pulse
// and which level.
func (m *Machine) receive(d delivery) (send, high bool) {
	id := d.to
	switch m.net.modules[id].kind {
	case Broadcast:
		return true, d.high
	case FlipFlop:
		if d.high {
			return false, false
		}
		m.on[id] = !m.on[id]
		return true, m.on[id]
	case Conjunction:
		mem := m.memory[id]
		if mem[d.slot] != d.high {
			mem[d.slot] = d.high
			if d.high {
				m.highs[id]++
			} else {
				m.highs[id]--
			}
		}
		return true, m.highs[id] != len(mem)
	default:
		return false, false
	}
}
