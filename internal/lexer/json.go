package lexer

import "encoding/json"

// JSON interchange shapes for tokens and errors. Payload-free tokens
// serialize as their bare tag string; Identifier and Constant wrap their
// payload in a single-key object; errors are tagged with a snake_case kind.

// MarshalJSON implements json.Marshaler.
func (t Token) MarshalJSON() ([]byte, error) {
	switch t.Type {
	case Identifier:
		return json.Marshal(struct {
			Identifier string `json:"Identifier"`
		}{t.Text})
	case Constant:
		return json.Marshal(struct {
			Constant int32 `json:"Constant"`
		}{t.Value})
	default:
		return json.Marshal(t.Type.String())
	}
}

type unexpectedCharacterJSON struct {
	Char string `json:"char"`
	Pos  int    `json:"pos"`
}

type invalidIntegerJSON struct {
	Value string `json:"value"`
	Pos   int    `json:"pos"`
}

type noMatchJSON struct {
	Pos int `json:"pos"`
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case UnexpectedCharacter:
		return json.Marshal(struct {
			Payload unexpectedCharacterJSON `json:"unexpected_character"`
		}{unexpectedCharacterJSON{Char: string(e.Char), Pos: e.Pos}})
	case InvalidInteger:
		return json.Marshal(struct {
			Payload invalidIntegerJSON `json:"invalid_integer"`
		}{invalidIntegerJSON{Value: e.Value, Pos: e.Pos}})
	default:
		return json.Marshal(struct {
			Payload noMatchJSON `json:"no_match"`
		}{noMatchJSON{Pos: e.Pos}})
	}
}
