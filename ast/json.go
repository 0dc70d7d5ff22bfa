package ast

import (
	"encoding/json"
	"fmt"
)

// marshalKind renders a JSON object tagged with the node's constructor name
// followed by its fields in declaration order (§6 "AST dump format"):
// {"kind":"BinaryOp","op":"+","left":{...},"right":{...}}.
//
// fields must marshal to a JSON object; its own field order is preserved
// because it is always a concrete (non-map) struct type declared at the
// call site, so encoding/json emits it in source order.
func marshalKind(kind string, fields any) ([]byte, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if len(body) <= 2 {
		return []byte(fmt.Sprintf(`{"kind":%q}`, kind)), nil
	}
	out := make([]byte, 0, len(body)+len(kind)+10)
	out = append(out, fmt.Sprintf(`{"kind":%q,`, kind)...)
	out = append(out, body[1:]...)
	return out, nil
}
