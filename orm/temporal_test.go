package orm_test

import (
	"testing"
	"time"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func TestDateValueDropsTime(t *testing.T) {
	t.Parallel()

	d := orm.Date{Time: time.Date(1975, 4, 23, 18, 30, 0, 0, time.UTC)}
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "1975-04-23" {
		t.Errorf("Value = %v, want %q", v, "1975-04-23")
	}
}

func TestDateZeroIsNull(t *testing.T) {
	t.Parallel()

	v, err := orm.Date{}.Value()
	if err != nil || v != nil {
		t.Errorf("Value = %v, %v, want nil, nil", v, err)
	}
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	want := orm.NewDate(1975, time.April, 23)
	tests := []struct {
		name string
		src  any
	}{
		{"string", "1975-04-23"},
		{"bytes", []byte("1975-04-23")},
		{"datetime string", "1975-04-23 00:00:00+00:00"},
		{"time", time.Date(1975, 4, 23, 9, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d orm.Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if !d.Equal(want) {
				t.Errorf("Scan = %v, want %v", d, want)
			}
		})
	}
}

func TestDateScanRejectsUnknownType(t *testing.T) {
	t.Parallel()

	var d orm.Date
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestTimestampRoundTripsMicroseconds(t *testing.T) {
	t.Parallel()

	ts := orm.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 123456789, time.UTC))
	if got := ts.Nanosecond(); got != 123456000 {
		t.Errorf("Nanosecond = %d, want %d", got, 123456000)
	}

	v, err := ts.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	var back orm.Timestamp
	if err := back.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !back.Equal(ts) {
		t.Errorf("round trip = %v, want %v", back, ts)
	}
}

func TestTimestampScanText(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, 1, 2, 3, 4, 5, 123456000, time.UTC)
	for _, src := range []any{
		"2024-01-02 03:04:05.123456+00:00",
		"2024-01-02T03:04:05.123456Z",
		[]byte("2024-01-02 03:04:05.123456"),
	} {
		var ts orm.Timestamp
		if err := ts.Scan(src); err != nil {
			t.Fatalf("Scan(%v): %v", src, err)
		}
		if !ts.Time.Equal(want) {
			t.Errorf("Scan(%v) = %v, want %v", src, ts.Time, want)
		}
	}
}
