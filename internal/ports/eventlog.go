package ports

// EventLog is the process-wide append-only text log. Append is best effort:
// implementations swallow write failures, since losing a log line must never
// affect queue correctness.
type EventLog interface {
	Append(line string)
}
