package psqlbuilder

import "github.com/Masterminds/squirrel"

// Dialect диалект SQL, от которого зависит формат плейсхолдеров
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// For возвращает squirrel builder с плейсхолдерами, подходящими для диалекта
// Postgres использует $1, $2, ...; SQLite - ?
func For(dialect Dialect) squirrel.StatementBuilderType {
	if dialect == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Select начинает SELECT запрос для Postgres
func Select(columns ...string) squirrel.SelectBuilder {
	return For(DialectPostgres).Select(columns...)
}

// Insert начинает INSERT запрос для Postgres
func Insert(table string) squirrel.InsertBuilder {
	return For(DialectPostgres).Insert(table)
}

// Update начинает UPDATE запрос для Postgres
func Update(table string) squirrel.UpdateBuilder {
	return For(DialectPostgres).Update(table)
}

// Delete начинает DELETE запрос для Postgres
func Delete(table string) squirrel.DeleteBuilder {
	return For(DialectPostgres).Delete(table)
}
