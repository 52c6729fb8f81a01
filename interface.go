package jumpflood

// Source is where a Diagram gets its random numbers, both for placing seeds
// & for picking seed colours. *rand.Rand satisfies this.
//
// Swap in a source with a fixed seed (see Diagram.SetSource, Config.Seed)
// to get the same diagram every time.
type Source interface {
	Intn(n int) int
}
