package partition

import (
	"strconv"
	"strings"
)

// Partition is one partition of an integer.
// Elements are ordered by the generator (non-increasing); the order carries
// no meaning beyond reproducibility.
type Partition []int

// Len returns the number of parts.
func (p Partition) Len() int { return len(p) }

// Sum returns the total of all parts.
func (p Partition) Sum() int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}

// Contains reports whether v is one of the parts.
func (p Partition) Contains(v int) bool {
	for _, part := range p {
		if part == v {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	copy(out, p)
	return out
}

// String renders the partition as "[8, 5, 4, 3]".
func (p Partition) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Ints returns the parts as a plain slice, for encoders that don't know
// about Partition.
func (p Partition) Ints() []int {
	return []int(p.Clone())
}
