package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerb(t *testing.T) {
	assert.Equal(t, "SELECT", Verb(`select "id" from "book_ex01"`))
	assert.Equal(t, "INSERT", Verb("\n  INSERT INTO x VALUES (?)"))
	assert.Equal(t, "UNKNOWN", Verb("   "))
}

func TestStatements(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, err := NewStatements(reg)
	require.NoError(t, err)

	ctx := context.Background()
	s.Log(ctx, "INSERT INTO a VALUES (?)", 1)
	s.Log(ctx, "INSERT INTO b VALUES (?)", 2)
	s.Log(ctx, "SELECT 1")

	assert.Equal(t, 2.0, testutil.ToFloat64(s.Counter("INSERT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Counter("SELECT")))

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, reg))
	assert.Equal(t, "INSERT   2\nSELECT   1\n", buf.String())
}

func TestNewStatementsTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewStatements(reg)
	require.NoError(t, err)
	_, err = NewStatements(reg)
	assert.Error(t, err)
}
