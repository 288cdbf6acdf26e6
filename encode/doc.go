// Package encode provides JSON encoding support.
//
// Encode walks an ir.Node tree and emits compact JSON text: no inserted
// whitespace, no trailing commas, object fields in insertion order.
// String output is printable ASCII with everything else \u-escaped (see
// token.Quote).
//
// Nodes whose Type is outside the seven supported variants are not
// encodable. The default (strict) mode fails with ErrEncoding; the
// Lenient option instead encodes such nodes as a JSON string holding
// the node's generic text representation, trading type fidelity for
// never failing. Non-finite floats follow the same rule: strict mode
// fails, lenient mode emits them as strings.
package encode
