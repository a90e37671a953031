// Package guard holds the constructor guard shared by commands, queries and
// domain objects that must not be used as zero values.
package guard
