package termclip

import "encoding/base64"

// Clipboard encodes text into OSC 52 payloads and dispatches them to a Transport.
//
// Support is checked on every call, and a payload is never built or forwarded
// when the transport reports OSC 52 as unsupported. A false result therefore
// means either "unsupported" or "write failed"; callers that need to tell
// them apart should call IsSupported first.
type Clipboard struct {
	transport Transport
}

// NewClipboard returns a Clipboard that dispatches through t.
func NewClipboard(t Transport) *Clipboard {
	return &Clipboard{transport: t}
}

// Copy places text on the system clipboard.
func (c *Clipboard) Copy(text string) bool {
	return c.CopyTo(ClipboardBuffer, text)
}

// CopyTo places text in the given selection target.
func (c *Clipboard) CopyTo(target SelectionTarget, text string) bool {
	if !c.transport.IsSupported() {
		return false
	}
	return c.transport.SetClipboard(target, EncodePayload(text))
}

// Clear empties the system clipboard.
func (c *Clipboard) Clear() bool {
	return c.ClearTarget(ClipboardBuffer)
}

// ClearTarget empties the given selection target by sending an empty payload.
func (c *Clipboard) ClearTarget(target SelectionTarget) bool {
	if !c.transport.IsSupported() {
		return false
	}
	return c.transport.SetClipboard(target, []byte{})
}

// IsSupported reports whether the transport currently supports OSC 52.
func (c *Clipboard) IsSupported() bool {
	return c.transport.IsSupported()
}

// EncodePayload returns the standard padded base64 encoding of the UTF-8
// bytes of text, as ASCII bytes.
func EncodePayload(text string) []byte {
	return []byte(base64.StdEncoding.EncodeToString([]byte(text)))
}
