package nodeexec

import (
	"fmt"

	"github.com/gabapcia/vitebridge/internal/nodeexec/literal"
)

// Envelope keys printed by the wallet tool around every payload.
const (
	envelopeError = "error"
	envelopeMsg   = "msg"
	envelopeData  = "data"
)

// Decoder turns the reassembled payload text of one invocation into a Response.
//
// The payload format is the most fragile contract with the tool, so the
// decoder is kept independent from how the subprocess is launched.
type Decoder interface {
	Decode(payload string) (Response, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(payload string) (Response, error)

// Decode calls f(payload).
func (f DecoderFunc) Decode(payload string) (Response, error) {
	return f(payload)
}

// envelopeDecoder parses the payload with the literal package and unwraps the
// tool's {error, msg, data} envelope.
type envelopeDecoder struct{}

// Compile-time assertion that envelopeDecoder implements Decoder.
var _ Decoder = envelopeDecoder{}

// NewEnvelopeDecoder returns the default Decoder.
func NewEnvelopeDecoder() Decoder {
	return envelopeDecoder{}
}

// Decode parses payload. A mapping holding both the "error" and "msg" keys is
// read as the tool envelope; any other value is returned as successful data.
func (envelopeDecoder) Decode(payload string) (Response, error) {
	v, err := literal.Parse(payload)
	if err != nil {
		return Response{}, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return Response{Data: v}, nil
	}

	flag, hasError := m[envelopeError]
	msg, hasMsg := m[envelopeMsg]
	if !hasError || !hasMsg {
		return Response{Data: v}, nil
	}

	return Response{
		Failed:  literal.Truthy(flag),
		Message: message(msg),
		Data:    m[envelopeData],
	}, nil
}

func message(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}
