// Package pagination validates the paging flags of the holders command and
// describes how far a cursor walk got.
package pagination
