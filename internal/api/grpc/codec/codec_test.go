package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

type message struct {
	Title string `json:"title"`
	Count int    `json:"count,omitempty"`
}

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(Name)
	require.NotNil(t, c)
	assert.Equal(t, Name, c.Name())
}

func TestCodec_MarshalUnmarshal(t *testing.T) {
	c := Codec{}

	b, err := c.Marshal(&message{Title: "Example"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Example"}`, string(b))

	var out message
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "Example", out.Title)
}

func TestCodec_EmptyPayload(t *testing.T) {
	var out message
	assert.NoError(t, Codec{}.Unmarshal(nil, &out))
	assert.Equal(t, message{}, out)
}

func TestCodec_Errors(t *testing.T) {
	_, err := Codec{}.Marshal(func() {})
	assert.Error(t, err)

	var out message
	assert.Error(t, Codec{}.Unmarshal([]byte("{"), &out))
}
