package keepers

import (
	"github.com/make-os/dao/storage/common"
	storagetypes "github.com/make-os/dao/storage/types"
	"github.com/make-os/dao/types/state"
	"github.com/pkg/errors"
)

// SystemKeeper stores system information such as
// the governance config fixed on first open.
type SystemKeeper struct {
	db storagetypes.Tx
}

// NewSystemKeeper creates an instance of SystemKeeper
func NewSystemKeeper(db storagetypes.Tx) *SystemKeeper {
	return &SystemKeeper{db: db}
}

// GetGovConfig returns the stored governance config or nil if not set
func (s *SystemKeeper) GetGovConfig() (*state.GovConfig, error) {
	rec, err := s.db.Get(MakeGovConfigKey())
	if err != nil {
		if err == common.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get governance config")
	}
	cfg, err := state.NewGovConfigFromBytes(rec.Value)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode governance config")
	}
	return cfg, nil
}

// SetGovConfig stores the governance config
func (s *SystemKeeper) SetGovConfig(cfg *state.GovConfig) error {
	return s.db.Put(common.NewRecord(MakeGovConfigKey(), cfg.Bytes()))
}
