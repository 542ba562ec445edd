// Package export converts sealed schemas into JSON Schema documents built
// with github.com/invopop/jsonschema.
//
//	doc, err := export.Marshal(stock)
//
// Type tags map to JSON types (int to integer, float and number to number,
// sequence to array, map to object). JSON Schema cannot express float-only
// values, so float properties note in their description that integers are
// rejected. Range bounds become minimum and
// maximum. A size check's exclusive maximum becomes an inclusive maxLength,
// maxItems or maxProperties one lower. Nullable chains become anyOf with
// null.
package export
