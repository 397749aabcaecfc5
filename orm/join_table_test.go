package orm_test

import (
	"reflect"
	"testing"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func TestQueryJoinTableSQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewRecorder(orm.PostgreSQL)
	_, _ = orm.QueryJoinTable[int64, int64](t.Context(), tq, "jnd_artist_cd", "artist_fk", "cd_fk", []int64{1, 2})

	got := tq.Last()
	want := `SELECT "artist_fk", "cd_fk" FROM "jnd_artist_cd" WHERE "artist_fk" IN ($1, $2) ORDER BY "artist_fk", "cd_fk"`
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
}

func TestQueryJoinTableEmptySources(t *testing.T) {
	t.Parallel()

	tq := orm.NewRecorder(orm.MySQL)
	pairs, err := orm.QueryJoinTable[int64, int64](t.Context(), tq, "jnd_artist_cd", "artist_fk", "cd_fk", nil)
	if err != nil || pairs != nil {
		t.Errorf("got %v, %v, want nil, nil", pairs, err)
	}
	if got := tq.SQL(); len(got) != 0 {
		t.Errorf("statements = %q, want none", got)
	}
}

func TestInsertJoinPairsSQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewRecorder(orm.MySQL)
	pairs := []orm.JoinPair[int64, int64]{{Source: 1, Target: 10}, {Source: 1, Target: 11}}
	if err := orm.InsertJoinPairs(t.Context(), tq, "jnd_artist_cd", "artist_fk", "cd_fk", pairs); err != nil {
		t.Fatalf("InsertJoinPairs: %v", err)
	}

	got := tq.Last()
	want := "INSERT INTO `jnd_artist_cd` (`artist_fk`, `cd_fk`) VALUES (?, ?), (?, ?)"
	if got.SQL != want {
		t.Errorf("SQL = %q, want %q", got.SQL, want)
	}
	if !reflect.DeepEqual(got.Args, []any{int64(1), int64(10), int64(1), int64(11)}) {
		t.Errorf("Args = %v", got.Args)
	}
}

func TestDeleteJoinPairsSQL(t *testing.T) {
	t.Parallel()

	tq := orm.NewRecorder(orm.SQLite)
	if err := orm.DeleteJoinPairs(t.Context(), tq, "jnd_artist_cd", "artist_fk", []int64{3}); err != nil {
		t.Fatalf("DeleteJoinPairs: %v", err)
	}

	want := `DELETE FROM "jnd_artist_cd" WHERE "artist_fk" IN (?)`
	if got := tq.Last().SQL; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestGroupBySourceAndUniqueTargets(t *testing.T) {
	t.Parallel()

	pairs := []orm.JoinPair[int64, int64]{
		{Source: 1, Target: 10},
		{Source: 1, Target: 11},
		{Source: 2, Target: 10},
	}

	grouped := orm.GroupBySource(pairs)
	if !reflect.DeepEqual(grouped[1], []int64{10, 11}) || !reflect.DeepEqual(grouped[2], []int64{10}) {
		t.Errorf("GroupBySource = %v", grouped)
	}
	if got := orm.UniqueTargets(pairs); !reflect.DeepEqual(got, []int64{10, 11}) {
		t.Errorf("UniqueTargets = %v", got)
	}
}
