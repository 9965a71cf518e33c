// Package domain contains the core domain model for aoc.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, or the filesystem. Infra/adapters map into/from these types, and puzzle
// days only see Input and return display strings.
package domain
