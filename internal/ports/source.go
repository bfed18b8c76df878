package ports

// Source yields payload bytes for the producer pool. Read fills buf and
// returns the number of bytes written; zero means "no data this cycle" and is
// a normal retry signal, not an error. Implementations must not retain buf and
// must never block for more than O(1) work.
type Source interface {
	Read(buf []byte) (int, error)
}
