package catalogue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/schema"
)

func TestEveryExampleHasASchema(t *testing.T) {
	assert.Equal(t, schema.Examples(), catalogue.Names())
}

func TestLookup(t *testing.T) {
	e, err := catalogue.Lookup("ex08")
	require.NoError(t, err)
	assert.Equal(t, "ex08", e.Name)
	assert.NotNil(t, e.Run)

	_, err = catalogue.Lookup("ex15")
	assert.Error(t, err)
}

func TestRunAllScenarios(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	log := zaptest.NewLogger(t)

	for _, e := range catalogue.All() {
		t.Run(e.Name, func(t *testing.T) {
			require.NoError(t, e.Run(ctx, db, log))
			require.NoError(t, e.Clear(ctx, db))
		})
	}
}
