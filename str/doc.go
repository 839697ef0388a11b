// Package str applies the collection algorithms to strings, read as a
// sequence of runes. Results that are character sequences come back as
// strings; grouping results hold the grouped runes as strings.
//
// Results that keep characters are cut from the bytes of the source, so an
// invalid UTF-8 byte reaches predicates as utf8.RuneError but is carried
// through unchanged: Filter with nothing dropped and TakeWhile followed by
// DropWhile both give back the source exactly. Mappers that produce runes
// (MapRunes) re-encode what they return.
//
// Where a comparator is optional, the default orders runes by code point,
// which for valid UTF-8 is the same as comparing the one-character strings.
package str
