package telemetry

import (
	"encoding/json"
	"time"
)

type Sample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// Series is a fixed-capacity FIFO of samples. Append returns a new Series
// and never mutates the receiver, so a published Series is safe to share.
type Series struct {
	capacity int
	samples  []Sample
}

func NewSeries(capacity int) Series {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return Series{capacity: capacity, samples: []Sample{}}
}

// Append adds a sample, evicting the oldest one past capacity.
func (s Series) Append(ts time.Time, value float64) Series {
	capacity := s.capacity
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	drop := len(s.samples) + 1 - capacity
	if drop < 0 {
		drop = 0
	}
	samples := make([]Sample, 0, len(s.samples)-drop+1)
	samples = append(samples, s.samples[drop:]...)
	samples = append(samples, Sample{Timestamp: ts, Value: value})
	return Series{capacity: capacity, samples: samples}
}

// Window returns a copy of the most recent n samples, oldest first.
func (s Series) Window(n int) []Sample {
	if n < 0 {
		n = 0
	}
	if n > len(s.samples) {
		n = len(s.samples)
	}
	out := make([]Sample, n)
	copy(out, s.samples[len(s.samples)-n:])
	return out
}

func (s Series) Len() int      { return len(s.samples) }
func (s Series) Capacity() int { return s.capacity }

func (s Series) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Window(len(s.samples)))
}
