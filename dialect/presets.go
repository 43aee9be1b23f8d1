package dialect

// Generic is the dialect-neutral preset: the union of widely portable SQL
// forms, none of the vendor-specific extensions. Like every preset it is a
// complete Dialect literal of its own.
var Generic = Dialect{
	name:                "generic",
	SupportsGroupByExpr: true,
	SupportsTrailingCommas: false,
	SupportsLimitClause: true,
}

// Ansi is the standard-SQL preset: Generic without the LIMIT clause, used
// as a conformance baseline.
var Ansi = Dialect{
	name:                "ansi",
	SupportsGroupByExpr: true,
}

// Postgres is the PostgreSQL preset.
var Postgres = Dialect{
	name:                              "postgresql",
	SupportsFilterDuringAggregation:   true,
	SupportsGroupByExpr:               true,
	SupportsDollarQuotedStrings:       true,
	SupportsPostgresOperators:         true,
	SupportsLambdaFunctions:           false,
	SupportsTrailingCommas:            false,
	SupportsLimitClause:               true,
	SupportsDescribeAsExplain:         false,
}

// MySQL is the MySQL/MariaDB preset.
var MySQL = Dialect{
	name:                               "mysql",
	SupportsFilterDuringAggregation:    false,
	SupportsGroupByExpr:                true,
	SupportsBacktickIdentifierQuoting:  true,
	SupportsDoubleQuoteAsStringLiteral: true,
	SupportsBackslashEscapesByDefault:  true,
	SupportsStringLiteralBackslashEscape: true,
	SupportsLimitClause:                true,
	SupportsDescribeAsExplain:          true,
}

// SQLite is the SQLite preset.
var SQLite = Dialect{
	name:                               "sqlite",
	SupportsBacktickIdentifierQuoting:  true,
	SupportsDoubleQuoteAsStringLiteral: true,
	SupportsGroupByExpr:                true,
	SupportsLimitClause:                true,
}

// MSSQL is the Microsoft SQL Server (T-SQL) preset.
var MSSQL = Dialect{
	name:                             "mssql",
	SupportsBracketIdentifierQuoting: true,
	SupportsTopClause:                true,
	SupportsLimitClause:              false,
	SupportsGroupByExpr:              true,
}

// Snowflake is the Snowflake preset.
var Snowflake = Dialect{
	name:                             "snowflake",
	SupportsConnectBy:                true,
	SupportsLambdaFunctions:          true,
	SupportsGroupByExpr:              true,
	SupportsTrailingCommas:           true,
	SupportsLimitClause:              true,
	SupportsWindowFunctionNullTreatmentArg: true,
}

// BigQuery is the Google BigQuery preset.
var BigQuery = Dialect{
	name:                     "bigquery",
	SupportsTrailingCommas:   true,
	SupportsGroupByExpr:      true,
	SupportsLambdaFunctions:  true,
	AllowsUnquotedIdentDash:  false,
	SupportsLimitClause:      true,
}

// Redshift is the Amazon Redshift preset (Postgres-derived).
var Redshift = Dialect{
	name:                        "redshift",
	SupportsGroupByExpr:         true,
	SupportsPostgresOperators:   true,
	SupportsLimitClause:         true,
}

// Hive is the Apache Hive preset.
var Hive = Dialect{
	name:                      "hive",
	SupportsGroupByExpr:       true,
	SupportsNumericPrefix:     true,
	AllowsIdentifierStartsWithDigit: true,
	SupportsLimitClause:       true,
}

// ClickHouse is the ClickHouse preset.
var ClickHouse = Dialect{
	name:                               "clickhouse",
	SupportsBacktickIdentifierQuoting:  true,
	SupportsGroupByExpr:                true,
	SupportsDictionarySyntax:           true,
	SupportsLambdaFunctions:            true,
	SupportsLimitClause:                true,
}

// DuckDB is the DuckDB preset.
var DuckDB = Dialect{
	name:                     "duckdb",
	SupportsGroupByExpr:      true,
	SupportsTrailingCommas:   true,
	SupportsLimitClause:      true,
	SupportsDollarQuotedStrings: true,
}

// Databricks is the Databricks SQL preset.
var Databricks = Dialect{
	name:                    "databricks",
	SupportsGroupByExpr:     true,
	SupportsLambdaFunctions: true,
	SupportsLimitClause:     true,
}

// byName indexes every preset by its canonical name, for Lookup.
var byName = map[string]Dialect{
	Generic.name:    Generic,
	Ansi.name:       Ansi,
	Postgres.name:   Postgres,
	MySQL.name:      MySQL,
	SQLite.name:     SQLite,
	MSSQL.name:      MSSQL,
	Snowflake.name:  Snowflake,
	BigQuery.name:   BigQuery,
	Redshift.name:   Redshift,
	Hive.name:       Hive,
	ClickHouse.name: ClickHouse,
	DuckDB.name:     DuckDB,
	Databricks.name: Databricks,
}

// Lookup returns the preset Dialect registered under name, and false if
// name names no known preset. Consumers who need a dialect outside this
// menu build one directly with New and the capability fields.
func Lookup(name string) (Dialect, bool) {
	d, ok := byName[name]
	return d, ok
}
