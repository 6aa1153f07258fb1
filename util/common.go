package util

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/vmihailenco/msgpack/v4"
)

// ToBytes returns msgpack encoded representation of s.
func ToBytes(s interface{}) []byte {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).
		SortMapKeys(true).
		UseCompactEncoding(true).
		Encode(s); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// ToObject decodes bytes produced by ToBytes to the given dest object
func ToObject(bs []byte, dest interface{}) error {
	return msgpack.NewDecoder(bytes.NewBuffer(bs)).Decode(dest)
}

// EncodeNumber serializes a number to BigEndian
func EncodeNumber(n uint64) []byte {
	var b = make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// DecodeNumber deserialize a number from BigEndian
func DecodeNumber(encNum []byte) uint64 {
	return binary.BigEndian.Uint64(encNum)
}

// MayDecodeNumber is like DecodeNumber but returns
// an error instead of panicking
func MayDecodeNumber(encNum []byte) (r uint64, err error) {
	defer func() {
		if rcv, ok := recover().(error); ok {
			err = rcv
		}
	}()
	r = DecodeNumber(encNum)
	return
}

// StrToDec converts a numeric string to decimal.
// Panics if val could not be converted to decimal.
func StrToDec(val string) decimal.Decimal {
	d, err := decimal.NewFromString(val)
	if err != nil {
		panic(err)
	}
	return d
}

// DecodeMap decodes a map to a struct with weak conversion.
// Default tagname is 'json'
func DecodeMap(srcMap interface{}, dest interface{}, tagName ...string) error {
	tn := "json"
	if len(tagName) > 0 {
		tn = tagName[0]
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           dest,
		TagName:          tn,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(srcMap)
}

// ParseLogLevel parse value from --loglevel flag.
// Example: "[dao=5,storage=2]" sets module dao to debug and storage to error.
func ParseLogLevel(val string) (res map[string]logrus.Level) {
	res = map[string]logrus.Level{}
	logLev := strings.TrimRight(strings.TrimLeft(val, "["), "]")
	for _, str := range strings.Split(logLev, ",") {
		str = strings.TrimSpace(str)
		parts := strings.Split(str, "=")
		if len(parts) != 2 {
			continue
		}
		module := strings.TrimSpace(parts[0])
		lvl := strings.TrimSpace(parts[1])
		lvlCast, err := cast.ToUint32E(lvl)
		if err == nil {
			res[module] = logrus.Level(lvlCast)
		}
	}
	return
}
