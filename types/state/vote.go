package state

import (
	"github.com/make-os/dao/util"
	"github.com/vmihailenco/msgpack/v4"
)

// VoteRecord describes the vote of a principal on a proposal.
// It is created on the first vote and never changed afterwards.
type VoteRecord struct {
	util.SerializerHelper `json:"-" msgpack:"-" mapstructure:"-"`
	UpVoted               bool        `json:"upVoted" mapstructure:"upVoted" msgpack:"upVoted"`
	DownVoted             bool        `json:"downVoted" mapstructure:"downVoted" msgpack:"downVoted"`
	Weight                util.String `json:"weight" mapstructure:"weight" msgpack:"weight"`
}

// HasVoted checks whether a vote in any direction was recorded
func (v *VoteRecord) HasVoted() bool {
	return v.UpVoted || v.DownVoted
}

// EncodeMsgpack implements msgpack.CustomEncoder
func (v *VoteRecord) EncodeMsgpack(enc *msgpack.Encoder) error {
	return v.EncodeMulti(enc, v.UpVoted, v.DownVoted, v.Weight)
}

// DecodeMsgpack implements msgpack.CustomDecoder
func (v *VoteRecord) DecodeMsgpack(dec *msgpack.Decoder) error {
	return v.DecodeMulti(dec, &v.UpVoted, &v.DownVoted, &v.Weight)
}

// Bytes returns the serialized vote record
func (v *VoteRecord) Bytes() []byte {
	return util.ToBytes(v)
}

// NewVoteRecordFromBytes decodes bz to VoteRecord
func NewVoteRecordFromBytes(bz []byte) (*VoteRecord, error) {
	var v = &VoteRecord{}
	if err := util.ToObject(bz, v); err != nil {
		return nil, err
	}
	return v, nil
}
