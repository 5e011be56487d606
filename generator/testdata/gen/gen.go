// Package gen is the output package used by the generator tests. Generated
// files are overlaid onto it and type checked.
package gen

type Level int8

const (
	Debug Level = iota - 1
	Info
	Warn
)

// Version orders by Major only; Equal agrees with Compare.
type Version struct {
	Major int
	Note  string
}

func (v Version) Equal(o Version) bool  { return v.Major == o.Major }
func (v Version) Compare(o Version) int { return v.Major - o.Major }
func (v Version) Hash() uint64          { return uint64(v.Major) }

// Rank has an order but no Equal method.
type Rank struct {
	n int
}

func (r Rank) Compare(o Rank) int { return r.n - o.n }
func (r Rank) Hash() uint64       { return uint64(r.n) }
