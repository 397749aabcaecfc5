package orm_test

import (
	"testing"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

type inferred struct{}

type book struct{}

func (book) TableName() string { return "book_ex01" }

type customer struct{}

func (*customer) TableName() string { return "customer_ex07_1" }

type unnamed struct{}

func (unnamed) TableName() string { return "" }

func TestResolveTableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolve  func() string
		expected string
	}{
		{
			name:     "inferred when TableName is missing",
			resolve:  func() string { return orm.ResolveTableName[inferred]("inferreds") },
			expected: "inferreds",
		},
		{
			name:     "value receiver",
			resolve:  func() string { return orm.ResolveTableName[book]("books") },
			expected: "book_ex01",
		},
		{
			name:     "pointer receiver",
			resolve:  func() string { return orm.ResolveTableName[customer]("customers") },
			expected: "customer_ex07_1",
		},
		{
			name:     "empty TableName falls back",
			resolve:  func() string { return orm.ResolveTableName[unnamed]("unnameds") },
			expected: "unnameds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.resolve(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
