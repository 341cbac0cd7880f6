package schema

import (
	"database/sql"
	"testing"
)

func TestTypeMatches(t *testing.T) {
	varchar := func(n int64) ColumnInfo {
		return ColumnInfo{
			Name:      "order_number",
			DataType:  "character varying",
			MaxLength: sql.NullInt64{Int64: n, Valid: true},
		}
	}

	tests := []struct {
		name string
		col  ColumnInfo
		typ  string
		want bool
	}{
		{"already at target size", varchar(30), "VARCHAR(30)", true},
		{"lowercase target", varchar(30), "varchar(30)", true},
		{"smaller than target", varchar(20), "VARCHAR(30)", false},
		{"larger than target", varchar(50), "VARCHAR(30)", false},
		{"text column", ColumnInfo{Name: "status", DataType: "text"}, "VARCHAR(30)", false},
		{"unrecognized target type", varchar(30), "TEXT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeMatches(tt.col, tt.typ); got != tt.want {
				t.Errorf("typeMatches(%+v, %q) = %v, want %v", tt.col, tt.typ, got, tt.want)
			}
		})
	}
}
