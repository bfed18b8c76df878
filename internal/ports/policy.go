package ports

// Policy carries the runtime tunables of the pipeline. Producer and consumer
// counts and the queue capacity are configuration, not compile-time constants.
type Policy struct {
	Producers       int
	Consumers       int
	QueueCapacity   int
	ReadBufferBytes int
}
