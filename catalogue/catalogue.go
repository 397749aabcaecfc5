// Package catalogue lists the mapping examples in order.
package catalogue

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex01"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex02"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex03"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex04"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex05"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex06"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex07"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex08"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex09"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex10"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex11"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex12"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex13"
	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex14"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Example is one mapping pattern with its scenario.
type Example struct {
	Name    string // "ex01", also the schema name
	Pattern string
	Run     func(ctx context.Context, db *orm.DB, log *zap.Logger) error
	Clear   func(ctx context.Context, db orm.Querier) error
}

var examples = []Example{
	{"ex01", "single generated key", ex01.Scenario, ex01.Clear},
	{"ex02", "composite key as embedded value", ex02.Scenario, ex02.Clear},
	{"ex03", "composite key as separate key type", ex03.Scenario, ex03.Clear},
	{"ex04", "lazily loaded blob", ex04.Scenario, ex04.Clear},
	{"ex05", "not-null, immutable and length constraints", ex05.Scenario, ex05.Clear},
	{"ex06", "date and timestamp granularity", ex06.Scenario, ex06.Clear},
	{"ex07", "one-to-one unidirectional, nullable and not-null join column", ex07.Scenario, ex07.Clear},
	{"ex08", "one-to-many unidirectional through a join table", ex08.Scenario, ex08.Clear},
	{"ex09", "one-to-many unidirectional through a join column", ex09.Scenario, ex09.Clear},
	{"ex10", "many-to-many bidirectional", ex10.Scenario, ex10.Clear},
	{"ex11", "one-to-one bidirectional", ex11.Scenario, ex11.Clear},
	{"ex12", "one-to-many bidirectional", ex12.Scenario, ex12.Clear},
	{"ex13", "many-to-one unidirectional", ex13.Scenario, ex13.Clear},
	{"ex14", "many-to-many unidirectional", ex14.Scenario, ex14.Clear},
}

// All returns every example in order.
func All() []Example {
	return append([]Example(nil), examples...)
}

// Lookup returns the example with the given name.
func Lookup(name string) (Example, error) {
	for _, e := range examples {
		if e.Name == name {
			return e, nil
		}
	}
	return Example{}, fmt.Errorf("catalogue: unknown example %q", name)
}

// Names returns the example names in order.
func Names() []string {
	names := make([]string, len(examples))
	for i, e := range examples {
		names[i] = e.Name
	}
	return names
}
