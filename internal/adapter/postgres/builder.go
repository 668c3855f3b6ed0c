package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder every repository uses.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
