package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	dict := map[string]interface{}{
		"File":         "binary_to_base64_stud.py",
		"Placeholders": []string{"binary_to_base64"},
	}
	data, err := Serialize(&dict)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	out := make(map[string]interface{})
	require.NoError(t, Deserialize(data, &out))
	assert.Equal(t, "binary_to_base64_stud.py", out["File"])
	assert.Equal(t, []interface{}{"binary_to_base64"}, out["Placeholders"])

	assert.Error(t, Deserialize([]byte("{"), &out))
}
