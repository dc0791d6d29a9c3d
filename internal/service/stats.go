package service

import "sync/atomic"

// Stats counts pipeline outcomes since startup.
type Stats struct {
	received        atomic.Int64
	processed       atomic.Int64
	rejected        atomic.Int64
	missionNotFound atomic.Int64
	failed          atomic.Int64
	eventsEmitted   atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Received        int64 `json:"received"`
	Processed       int64 `json:"processed"`
	Rejected        int64 `json:"rejected"`
	MissionNotFound int64 `json:"mission_not_found"`
	Failed          int64 `json:"failed"`
	EventsEmitted   int64 `json:"events_emitted"`
}

func (s *Stats) record(o Outcome) {
	switch o {
	case OutcomeProcessed:
		s.processed.Add(1)
	case OutcomeRejected:
		s.rejected.Add(1)
	case OutcomeMissionNotFound:
		s.missionNotFound.Add(1)
	case OutcomeFailed:
		s.failed.Add(1)
	}
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Received:        s.received.Load(),
		Processed:       s.processed.Load(),
		Rejected:        s.rejected.Load(),
		MissionNotFound: s.missionNotFound.Load(),
		Failed:          s.failed.Load(),
		EventsEmitted:   s.eventsEmitted.Load(),
	}
}
