package pulse

import "fmt"

// Count presses the button n times on a fresh Machine and returns the total
// number of low and high pulses delivered.
func (n *Network) Count(presses int) (low, high int) {
	m := NewMachine(n)
	for i := 0; i < presses; i++ {
		l, h := m.Press(nil)
		low += l
		high += h
	}

	return low, high
}

// Upstream returns every module that can reach name by following outputs,
// name itself excluded unless it lies on a cycle.
// It walks input edges backwards with an explicit work-list.
func (n *Network) Upstream(name string) (map[string]struct{}, error) {
	id, err := n.lookup(name)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, len(n.modules))
	work := append([]int(nil), n.modules[id].inputs...)
	out := make(map[string]struct{})
	for len(work) > 0 {
		u := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[u] {
			continue
		}
		seen[u] = true
		out[n.modules[u].name] = struct{}{}
		work = append(work, n.modules[u].inputs...)
	}

	return out, nil
}

// PressesUntilLow returns the fewest button presses after which target
// receives a low pulse, simulating at most limit presses.
//
// Behavior:
//  1. The target must be fed by exactly one conjunction (the feeder),
//     otherwise ErrNoFeeder.
//  2. The feeder sends low only when all its inputs last sent high, so the
//     first press on which each input sends high to the feeder is recorded.
//  3. Once every input has been recorded, the answer is the LCM of those
//     presses, assuming each input fires high periodically from press zero.
//  4. If the target actually receives a low pulse earlier, that press wins.
//
// Returns ErrUnknownModule for an undeclared target and ErrNoCycle when the
// broadcaster cannot reach the target or limit is exhausted.
func (n *Network) PressesUntilLow(target string, limit int) (int, error) {
	tid, err := n.lookup(target)
	if err != nil {
		return 0, err
	}
	up, err := n.Upstream(target)
	if err != nil {
		return 0, err
	}
	if _, ok := up[Broadcaster]; !ok {
		return 0, fmt.Errorf("%w: %q is not reachable from %s", ErrNoCycle, target, Broadcaster)
	}

	feeders := n.modules[tid].inputs
	if len(feeders) != 1 || n.modules[feeders[0]].kind != Conjunction {
		return 0, fmt.Errorf("%w: %q has inputs %v", ErrNoFeeder, target, n.names(feeders))
	}
	feeder := n.modules[feeders[0]].name

	first := make(map[string]int, len(n.modules[feeders[0]].inputs))
	want := len(n.modules[feeders[0]].inputs)
	m := NewMachine(n)
	for m.Presses() < limit {
		gotLow := false
		m.Press(func(p Pulse) {
			switch {
			case p.To == target && !p.High:
				gotLow = true
			case p.To == feeder && p.High:
				if _, ok := first[p.From]; !ok {
					first[p.From] = m.Presses()
				}
			}
		})
		if gotLow {
			return m.Presses(), nil
		}
		if len(first) == want {
			period := 1
			for _, k := range first {
				period = lcm(period, k)
			}
			return period, nil
		}
	}

	return 0, fmt.Errorf("%w: %d presses", ErrNoCycle, limit)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }
