package dao

import (
	"github.com/make-os/dao/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the engine's prometheus collectors.
// A nil *metrics records nothing.
type metrics struct {
	proposalsCreated prometheus.Counter
	votes            *prometheus.CounterVec
	finalized        *prometheus.CounterVec
	rejections       *prometheus.CounterVec
}

func newMetrics(promRegistry prometheus.Registerer) *metrics {
	if promRegistry == nil {
		return nil
	}
	promautoFactory := promauto.With(promRegistry)
	return &metrics{
		proposalsCreated: promautoFactory.NewCounter(prometheus.CounterOpts{
			Name: "dao_proposals_created_total",
			Help: "total number of proposals created",
		}),
		votes: promautoFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "dao_votes_total",
			Help: "total number of accepted votes by direction",
		}, []string{"direction"}),
		finalized: promautoFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "dao_finalized_total",
			Help: "total number of finalized proposals by outcome",
		}, []string{"outcome"}),
		rejections: promautoFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "dao_rejections_total",
			Help: "total number of rejected operations by reason",
		}, []string{"reason"}),
	}
}

// observe records the events of a committed operation
func (m *metrics) observe(events []*types.EventRecord) {
	if m == nil {
		return
	}
	for _, rec := range events {
		switch evt := rec.Event.(type) {
		case *types.EvtProposalCreated:
			m.proposalsCreated.Inc()
		case *types.EvtUpVote:
			m.votes.WithLabelValues("up").Inc()
		case *types.EvtDownVote:
			m.votes.WithLabelValues("down").Inc()
		case *types.EvtFinalize:
			if evt.Approved {
				m.finalized.WithLabelValues("approved").Inc()
			} else {
				m.finalized.WithLabelValues("rejected").Inc()
			}
		}
	}
}

// reject records a failed operation
func (m *metrics) reject(err error) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(types.ErrCode(err)).Inc()
}
