package nbt

import (
	"strings"

	"go.uber.org/zap"
)

// Termination says why a sequence of entries or list items stopped.
type Termination uint8

const (
	// EndOfStream: no bytes were left where a tag type byte was expected.
	EndOfStream Termination = iota
	// EndTag: an explicit End tag closed the compound.
	EndTag
	// ListTruncated: the input ended before a list reached its declared count.
	ListTruncated
)

func (t Termination) String() string {
	switch t {
	case EndOfStream:
		return "end_of_stream"
	case EndTag:
		return "end_tag"
	case ListTruncated:
		return "list_truncated"
	default:
		return "unknown"
	}
}

// Observer receives trace points while a decode runs. The path slice is
// reused by the decoder and is only valid for the duration of the call.
type Observer interface {
	// EntryStart is called before the tag type byte of an entry is read.
	EntryStart(offset int, path []string)
	// TagResolved is called once the tag type and name of an entry are
	// known; offset is the start of the entry's payload.
	TagResolved(offset int, path []string, tag TagType, name string)
	// Terminated is called when a compound, the root, or a list stops.
	Terminated(offset int, path []string, reason Termination)
}

// NopObserver ignores every trace point.
type NopObserver struct{}

func (NopObserver) EntryStart(int, []string)                   {}
func (NopObserver) TagResolved(int, []string, TagType, string) {}
func (NopObserver) Terminated(int, []string, Termination)      {}

// ZapObserver logs trace points at debug level.
type ZapObserver struct {
	logger *zap.Logger
}

// NewZapObserver creates an Observer writing to logger. A nil logger
// yields a no-op logger.
func NewZapObserver(logger *zap.Logger) *ZapObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapObserver{logger: logger}
}

func (o *ZapObserver) EntryStart(offset int, path []string) {
	if ce := o.logger.Check(zap.DebugLevel, "entry start"); ce != nil {
		ce.Write(zap.Int("offset", offset), zap.String("path", joinPath(path)))
	}
}

func (o *ZapObserver) TagResolved(offset int, path []string, tag TagType, name string) {
	if ce := o.logger.Check(zap.DebugLevel, "tag resolved"); ce != nil {
		ce.Write(
			zap.Int("offset", offset),
			zap.String("path", joinPath(path)),
			zap.Stringer("tag", tag),
			zap.String("name", name),
		)
	}
}

func (o *ZapObserver) Terminated(offset int, path []string, reason Termination) {
	if ce := o.logger.Check(zap.DebugLevel, "terminated"); ce != nil {
		ce.Write(
			zap.Int("offset", offset),
			zap.String("path", joinPath(path)),
			zap.Stringer("reason", reason),
		)
	}
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}
	return strings.Join(path, ".")
}
