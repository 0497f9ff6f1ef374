// Package promresult counts results with Prometheus.
package promresult

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	xgxresult "github.com/xgx-io/xgx-result"
)

// Label values of the "outcome" label.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder counts observed results by domain, code and outcome. It is a
// prometheus.Collector; register it on the registry of your choice.
type Recorder struct {
	results *prometheus.CounterVec
}

// NewRecorder returns a Recorder exporting <namespace>_<subsystem>_results_total.
func NewRecorder(namespace, subsystem string) *Recorder {
	return &Recorder{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "results_total",
			Help:      "Results observed, by domain, code and outcome.",
		}, []string{"domain", "code", "outcome"}),
	}
}

// Observe counts o under domain. The code label is exact for every integer
// kind; a nil o counts as a success.
func (r *Recorder) Observe(domain string, o xgxresult.Outcome) {
	o = xgxresult.OrSuccess(o)
	outcome := OutcomeSuccess
	if o.IsFailure() {
		outcome = OutcomeFailure
	}
	r.results.WithLabelValues(domain, o.CodeString(), outcome).Inc()
}

// Counter returns the counter of one label combination.
func (r *Recorder) Counter(domain string, code int64, outcome string) prometheus.Counter {
	return r.results.WithLabelValues(domain, strconv.FormatInt(code, 10), outcome)
}

func (r *Recorder) Describe(ch chan<- *prometheus.Desc) {
	r.results.Describe(ch)
}

func (r *Recorder) Collect(ch chan<- prometheus.Metric) {
	r.results.Collect(ch)
}
