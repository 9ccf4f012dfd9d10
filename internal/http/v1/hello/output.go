package hello

// TextOutput is a plain-text response. A []byte body is written as-is, outside content negotiation.
type TextOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// DataOutput carries a Message negotiated as JSON or CBOR.
type DataOutput struct {
	Body Message
}
