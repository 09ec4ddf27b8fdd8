package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "eui64"

	modeStandard  = "standard"
	modeModified  = "modified"
	resultOk      = "ok"
	resultInvalid = "invalid"
)

var conversionLabels = []string{"mode", "result"}

type conversionMetrics struct {
	conversionsTotal *prometheus.CounterVec
}

func newConversionMetrics() *conversionMetrics {
	conversionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "MAC to EUI-64 conversions, by mode and result.",
		},
		conversionLabels,
	)

	// Export every series from zero
	for _, mode := range []string{modeStandard, modeModified} {
		for _, result := range []string{resultOk, resultInvalid} {
			conversionsTotal.WithLabelValues(mode, result)
		}
	}

	return &conversionMetrics{
		conversionsTotal: conversionsTotal,
	}
}

func (metrics *conversionMetrics) observe(ipv6 bool, ok bool) {
	mode := modeStandard
	if ipv6 {
		mode = modeModified
	}

	result := resultOk
	if !ok {
		result = resultInvalid
	}

	metrics.conversionsTotal.WithLabelValues(mode, result).Inc()
}
