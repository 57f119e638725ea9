package serialize

import "encoding/json"

// Serialize encodes v as indented JSON followed by a newline.
func Serialize(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Deserialize decodes JSON data into v.
func Deserialize(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
