// Package codec converts records to and from their compact JSON text form.
//
// The member layout is declared by hand against easyjson's jwriter and
// jlexer, so no reflection is involved at runtime.
package codec
