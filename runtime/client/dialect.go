package client

import (
	"context"
	"strconv"
	"strings"
)

// rebind rewrites positional "?" placeholders into the provider's syntax.
// Question marks inside quoted strings and identifiers are left alone.
func (p Provider) rebind(query string) string {
	if p != Postgres || !strings.Contains(query, "?") {
		return query
	}

	var (
		b     strings.Builder
		n     int
		quote rune
	)
	b.Grow(len(query) + 8)
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// insertVerb is the statement prefix used to store a record, replacing an
// existing row with the same key where the engine supports it.
func (p Provider) insertVerb() string {
	switch p {
	case SQLite:
		return "INSERT OR REPLACE INTO"
	case MySQL:
		return "REPLACE INTO"
	default:
		return "INSERT INTO"
	}
}

// versionQuery returns the statement reporting the server version.
func (p Provider) versionQuery() string {
	switch p {
	case SQLite:
		return "SELECT sqlite_version()"
	case Postgres:
		return "SHOW server_version"
	default:
		return "SELECT VERSION()"
	}
}

// EngineVersion reports the version string of the database engine.
func (c *Client) EngineVersion(ctx context.Context) (string, error) {
	cur, err := c.Rows(ctx, c.provider.versionQuery())
	if err != nil {
		return "", err
	}
	defer cur.Close()

	if !cur.Next() {
		if err := cur.Err(); err != nil {
			return "", err
		}
		return "", ErrNoRows
	}
	return cur.String(0), cur.Err()
}
