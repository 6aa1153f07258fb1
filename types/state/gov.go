package state

import (
	"github.com/make-os/dao/util"
	"github.com/make-os/dao/util/identifier"
	"github.com/vmihailenco/msgpack/v4"
)

// NativeAsset is the asset identifier under which the native
// currency balances are tracked
const NativeAsset = "native"

// GovConfig holds the governance parameters fixed when the engine
// is first opened
type GovConfig struct {
	util.SerializerHelper `json:"-" msgpack:"-" mapstructure:"-"`
	GovAsset              string             `json:"govAsset" mapstructure:"govAsset" msgpack:"govAsset"`
	PayAsset              string             `json:"payAsset" mapstructure:"payAsset" msgpack:"payAsset"`
	Quorum                util.String        `json:"quorum" mapstructure:"quorum" msgpack:"quorum"`
	Treasury              identifier.Address `json:"treasury" mapstructure:"treasury" msgpack:"treasury"`
}

// Equal checks whether o describes the same governance parameters.
// Quorum values are compared numerically.
func (g *GovConfig) Equal(o *GovConfig) bool {
	return g.GovAsset == o.GovAsset &&
		g.PayAsset == o.PayAsset &&
		g.Treasury.Equal(o.Treasury) &&
		g.Quorum.IsDecimal() && o.Quorum.IsDecimal() &&
		g.Quorum.Decimal().Equal(o.Quorum.Decimal())
}

// EncodeMsgpack implements msgpack.CustomEncoder
func (g *GovConfig) EncodeMsgpack(enc *msgpack.Encoder) error {
	return g.EncodeMulti(enc, g.GovAsset, g.PayAsset, g.Quorum, g.Treasury)
}

// DecodeMsgpack implements msgpack.CustomDecoder
func (g *GovConfig) DecodeMsgpack(dec *msgpack.Decoder) error {
	return g.DecodeMulti(dec, &g.GovAsset, &g.PayAsset, &g.Quorum, &g.Treasury)
}

// Bytes returns the serialized config
func (g *GovConfig) Bytes() []byte {
	return util.ToBytes(g)
}

// NewGovConfigFromBytes decodes bz to GovConfig
func NewGovConfigFromBytes(bz []byte) (*GovConfig, error) {
	var g = &GovConfig{}
	if err := util.ToObject(bz, g); err != nil {
		return nil, err
	}
	return g, nil
}
