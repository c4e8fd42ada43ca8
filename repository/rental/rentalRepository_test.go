package rental

import (
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/require"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/datex"
)

// The period predicate is the heart of the reporting queries; pin down
// the SQL it generates.
func TestPeriodWhereSQL(t *testing.T) {
	start, err := datex.Parse("2023-12-15")
	require.NoError(t, err)
	end, err := datex.Parse("2023-12-31")
	require.NoError(t, err)

	ds := dialect.From(goqu.T("history").As("h")).
		Select("h.id").
		Where(periodWhere(start, end)...)

	sqlStr, args, err := ds.Prepared(true).ToSQL()
	require.NoError(t, err)

	// start_date bounded on both sides, end_date bounded or still open
	require.Contains(t, sqlStr, `"h"."start_date" >=`)
	require.Contains(t, sqlStr, `"h"."start_date" <=`)
	require.Contains(t, sqlStr, `"h"."end_date" >=`)
	require.Contains(t, sqlStr, `"h"."end_date" <=`)
	require.Contains(t, sqlStr, `"h"."end_date" IS NULL`)
	require.Contains(t, sqlStr, ` OR `)

	require.Equal(t, []interface{}{start, end, start, end}, args)
}
