package ua

// The primitive wrapper family is generated from the table in
// internal/mkprimitives. The table is the single source of truth for which
// primitives are supported.

//go:generate go run ../internal/mkprimitives -out primitives_gen.go
