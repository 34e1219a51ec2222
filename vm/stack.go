package vm

import "fmt"

// callStack keeps return addresses for CALL/RET. Hardware interpreters cap
// the depth at 16 frames; this one grows as needed, a documented
// simplification - deep recursion is the program's problem, not a fault.
type callStack struct {
	addrs []uint16
}

// Push saves a return address.
func (s *callStack) Push(addr uint16) {
	s.addrs = append(s.addrs, addr)
}

// Pop removes and returns the most recent return address.
func (s *callStack) Pop() (uint16, error) {
	if len(s.addrs) == 0 {
		return 0, fmt.Errorf("RET without a matching CALL: %w", ErrStackUnderflow)
	}
	addr := s.addrs[len(s.addrs)-1]
	s.addrs = s.addrs[:len(s.addrs)-1]
	return addr, nil
}

// Depth returns the number of saved return addresses.
func (s *callStack) Depth() int {
	return len(s.addrs)
}
