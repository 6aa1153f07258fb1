package util

// Decoder describes a msgpack-like decoder
type Decoder interface {
	DecodeMulti(v ...interface{}) error
}

// Encoder describes a msgpack-like encoder
type Encoder interface {
	EncodeMulti(v ...interface{}) error
}

// SerializerHelper provides convenient methods to serialize and deserialize objects
type SerializerHelper struct{}

// DecodeMulti wraps msgpack.Decoder#DecodeMulti to ignore EOF error.
// Records written by an older layout (fewer fields) decode with the
// missing fields left at their zero values.
func (h SerializerHelper) DecodeMulti(dec Decoder, v ...interface{}) error {
	err := dec.DecodeMulti(v...)
	if err != nil {
		if err.Error() != "EOF" {
			return err
		}
	}
	return nil
}

// EncodeMulti wraps msgpack.Encoder#EncodeMulti
func (h SerializerHelper) EncodeMulti(enc Encoder, v ...interface{}) error {
	return enc.EncodeMulti(v...)
}
