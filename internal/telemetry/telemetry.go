// Package telemetry counts executed statements with prometheus.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Statements counts statements by SQL verb. It implements orm.Logger so it
// can be attached with DB.Debug.
type Statements struct {
	total *prometheus.CounterVec
}

var _ orm.Logger = (*Statements)(nil)

// NewStatements registers the chapter03_statements_total counter on reg.
func NewStatements(reg prometheus.Registerer) (*Statements, error) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chapter03_statements_total",
		Help: "SQL statements executed, by verb.",
	}, []string{"verb"})
	if err := reg.Register(total); err != nil {
		return nil, fmt.Errorf("register statements counter: %w", err)
	}
	return &Statements{total: total}, nil
}

func (s *Statements) Log(_ context.Context, query string, _ ...any) {
	s.total.WithLabelValues(Verb(query)).Inc()
}

// Counter returns the counter for one verb.
func (s *Statements) Counter(verb string) prometheus.Counter {
	return s.total.WithLabelValues(verb)
}

// Verb returns the upper-cased first keyword of query.
func Verb(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}

// Report writes one "verb count" line per verb gathered from g.
func Report(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	counts := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "chapter03_statements_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "verb" {
					counts[lp.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	verbs := make([]string, 0, len(counts))
	for v := range counts {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	for _, v := range verbs {
		if _, err := fmt.Fprintf(w, "%-8s %d\n", v, int64(counts[v])); err != nil {
			return err
		}
	}
	return nil
}
