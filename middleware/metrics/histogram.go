package metrics

import "github.com/prometheus/client_golang/prometheus"

type Histogram interface {
	Observe(float64)
	Values(v ...string) Histogram
}

type histogram struct {
	*prometheus.HistogramVec
	values []string
}

func NewHistogram(opts prometheus.HistogramOpts, labels []string) Histogram {
	vec := prometheus.NewHistogramVec(opts, labels)
	prometheus.MustRegister(vec)
	return &histogram{
		HistogramVec: vec,
	}
}

func (h *histogram) Observe(v float64) {
	h.WithLabelValues(h.values...).Observe(v)
}

func (h *histogram) Values(v ...string) Histogram {
	return &histogram{
		HistogramVec: h.HistogramVec,
		values:       v,
	}
}
