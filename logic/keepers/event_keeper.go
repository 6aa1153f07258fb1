package keepers

import (
	"github.com/make-os/dao/storage/common"
	storagetypes "github.com/make-os/dao/storage/types"
	"github.com/make-os/dao/types"
	"github.com/make-os/dao/util"
	"github.com/pkg/errors"
)

// EventKeeper stores sequenced events for polling
type EventKeeper struct {
	db storagetypes.Tx
}

// NewEventKeeper creates an instance of EventKeeper
func NewEventKeeper(db storagetypes.Tx) *EventKeeper {
	return &EventKeeper{db: db}
}

// LastSeq returns the sequence number of the last stored event
func (k *EventKeeper) LastSeq() (uint64, error) {
	rec, err := k.db.Get(MakeEventSeqKey())
	if err != nil {
		if err == common.ErrRecordNotFound {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to get event sequence")
	}
	return util.MayDecodeNumber(rec.Value)
}

// Append stores evt under the next sequence number
func (k *EventKeeper) Append(evt types.Event) (*types.EventRecord, error) {
	seq, err := k.LastSeq()
	if err != nil {
		return nil, err
	}

	er := types.NewEventRecord(seq+1, evt)
	if err = k.db.Put(common.NewRecord(MakeEventKey(er.Seq), util.ToBytes(er))); err != nil {
		return nil, errors.Wrap(err, "failed to save event")
	}

	if err = k.db.Put(common.NewRecord(MakeEventSeqKey(), util.EncodeNumber(er.Seq))); err != nil {
		return nil, errors.Wrap(err, "failed to save event sequence")
	}

	return er, nil
}

// Since returns events with a sequence number greater than seq,
// in ascending order
func (k *EventKeeper) Since(seq uint64) ([]*types.EventRecord, error) {
	var res []*types.EventRecord
	var err error
	k.db.Iterate(MakeQueryKeyEvents(), true, func(rec *common.Record) bool {
		var er types.EventRecord
		if err = rec.Scan(&er); err != nil {
			err = errors.Wrap(err, "failed to decode event")
			return true
		}
		if er.Seq <= seq {
			return false
		}
		if _, err = er.DecodeEvent(); err != nil {
			return true
		}
		res = append(res, &er)
		return false
	})
	return res, err
}
