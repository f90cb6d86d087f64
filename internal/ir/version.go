package ir

// Version constants for the record schema and the rule engine.
const (
	// IRVersion is the record schema version.
	IRVersion = "1"

	// EngineVersion is the rule engine version. A stored derivation replays
	// against the engine that produced it.
	EngineVersion = "0.1.0"
)
