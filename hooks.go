package varint

// Hooks lightweight callbacks for rejected payloads.
// Implementations MUST be cheap and non-blocking; they run on decode paths.
type Hooks interface {
	// A payload failed to decode. size is the payload length in bytes.
	DecodeRejected(name string, size int, err error)

	// A payload or value list exceeded a configured limit.
	// what ∈ {"bytes", "items"}
	LimitExceeded(name, what string, got, limit int)

	// A single-value payload carried n bytes after the value.
	TrailingBytes(name string, n int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeRejected(string, int, error)      {}
func (NopHooks) LimitExceeded(string, string, int, int) {}
func (NopHooks) TrailingBytes(string, int)              {}
