package atomcss

import (
	"github.com/yacobolo/atomcss/stylesheet"
	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	classPrefix  string
	elementID    string
	vendorPrefix bool
	hasher       Hasher
	transformer  Transformer
	document     stylesheet.Document
	sink         stylesheet.Sink
	log          *zap.Logger
}

func defaultOptions() options {
	return options{
		classPrefix:  DefaultClassPrefix,
		elementID:    stylesheet.DefaultElementID,
		vendorPrefix: true,
		hasher:       FNV1a,
		log:          zap.NewNop(),
	}
}

// WithClassPrefix replaces the "z-" class name prefix.
func WithClassPrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.classPrefix = prefix
		}
	}
}

// WithElementID replaces the "__css__" id of the designated style element.
func WithElementID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.elementID = id
		}
	}
}

// WithVendorPrefix toggles vendor prefixing in the built-in transformer.
func WithVendorPrefix(enabled bool) Option {
	return func(o *options) { o.vendorPrefix = enabled }
}

// WithHasher replaces the FNV-1a hasher. Server and client must agree.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithTransformer replaces the built-in transformer.
func WithTransformer(t Transformer) Option {
	return func(o *options) { o.transformer = t }
}

// WithDocument runs the engine in interactive mode against doc: the
// designated element is rehydrated, then found or created and bound as
// the sink. A nil doc keeps server mode.
func WithDocument(doc stylesheet.Document) Option {
	return func(o *options) { o.document = doc }
}

// WithSink overrides the sink chosen from the document.
func WithSink(s stylesheet.Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}
