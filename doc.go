// Package nbt decodes named binary tag trees.
//
// The format is a sequence of entries. Each entry is a one byte tag type, a
// big-endian int16 length-prefixed name and a payload whose layout depends
// on the tag type. Compounds nest further entries and end with a single End
// byte; lists carry an element type and a count followed by unnamed
// payloads.
//
// # Architecture Overview
//
//	nbt/                 Decoder, value types, observer, tree helpers
//	├── internal/binary/ Byte cursor with big-endian fixed-width reads
//	├── errors/          Structured error types for debugging
//	├── source/          Reading input files, gzip and zlib unwrapping
//	├── export/          JSON, YAML, CBOR and text rendering
//	└── cmd/nbtdump/     Command line inspector
//
// # Quick Start
//
//	data, _, err := source.Load("level.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	root, err := nbt.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	seed, ok := root.GetLong("RandomSeed")
//
// # Values
//
// Decoded payloads implement Value. Scalars are the named types Byte,
// Short, Int, Long, Float, Double and String; ByteArray holds signed
// bytes; *List and *Compound hold nested values. A Compound keeps entries
// in the order they were first written; a repeated name replaces the
// earlier value in place.
//
// # Termination
//
// The root and every compound stop at an End tag or when the input runs
// out where a tag type byte would start. A list stops early when the input
// runs out between items. Running out in the middle of any fixed-width
// read is an error matching ErrUnexpectedEndOfStream; a tag type byte
// above 10 is an error matching ErrUnknownTagType. Lists and compounds
// nested deeper than DefaultMaxDepth levels fail with ErrTooDeep; see
// WithMaxDepth.
//
// # Tracing
//
// Decode does not log. Pass an Observer with WithObserver to receive trace
// points, for example NewZapObserver for structured debug logs.
//
// Decoding holds no shared state, so separate buffers may be decoded
// concurrently.
package nbt
