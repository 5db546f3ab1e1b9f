// Package compat checks database engine versions against the minimum each
// provider needs for the statements comfort generates.
package compat

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"

	"github.com/tplib/comfort/runtime/client"
)

// Minimum engine versions.
var minimums = map[client.Provider]string{
	// Foreign key enforcement.
	client.SQLite: "3.6.19",
	// CHECK constraints are parsed but ignored before 8.0.16.
	client.MySQL: "8.0.16",
	// CREATE TABLE IF NOT EXISTS.
	client.Postgres: "9.1",
}

var leadingVersion = regexp.MustCompile(`^\s*v?(\d+(?:\.\d+)*)`)

// Result is the outcome of a version check.
type Result struct {
	Provider client.Provider
	Engine   *version.Version
	Minimum  *version.Version
}

// OK reports whether the engine meets the minimum.
func (r Result) OK() bool {
	return !r.Engine.LessThan(r.Minimum)
}

// Minimum returns the minimum engine version for provider.
func Minimum(p client.Provider) (*version.Version, error) {
	raw, ok := minimums[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", client.ErrUnsupportedProvider, p)
	}
	return version.NewVersion(raw)
}

// Parse extracts the leading dotted version from an engine version string
// such as "8.0.36-0ubuntu0.22.04.1" or "16.2 (Debian 16.2-1.pgdg120+2)".
func Parse(engine string) (*version.Version, error) {
	m := leadingVersion.FindStringSubmatch(engine)
	if m == nil {
		return nil, fmt.Errorf("invalid version format: %q", engine)
	}
	return version.NewVersion(m[1])
}

// Check compares an engine version string with the provider minimum.
func Check(p client.Provider, engine string) (Result, error) {
	minimum, err := Minimum(p)
	if err != nil {
		return Result{}, err
	}
	v, err := Parse(engine)
	if err != nil {
		return Result{}, err
	}
	return Result{Provider: p, Engine: v, Minimum: minimum}, nil
}
