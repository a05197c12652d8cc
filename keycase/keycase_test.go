package keycase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCamel(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "single word",
			key:  "message",
			want: "message",
		},
		{
			name: "two segments",
			key:  "user_id",
			want: "userId",
		},
		{
			name: "three segments",
			key:  "profile_pic_url",
			want: "profilePicUrl",
		},
		{
			name: "already camel",
			key:  "userId",
			want: "userId",
		},
		{
			name: "single letter segments",
			key:  "a_b_c",
			want: "aBC",
		},
		{
			name: "leading underscore preserved",
			key:  "_id",
			want: "_id",
		},
		{
			name: "trailing underscore preserved",
			key:  "id_",
			want: "id_",
		},
		{
			name: "doubled underscore preserved",
			key:  "a__b",
			want: "a_B",
		},
		{
			name: "only underscores",
			key:  "__",
			want: "__",
		},
		{
			name: "digit segment keeps its underscore",
			key:  "item_2_label",
			want: "item_2Label",
		},
		{
			name: "already camel after underscore",
			key:  "a_B",
			want: "a_B",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToCamel(tt.key))
		})
	}
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "single word",
			key:  "message",
			want: "message",
		},
		{
			name: "two words",
			key:  "userId",
			want: "user_id",
		},
		{
			name: "three words",
			key:  "profilePicUrl",
			want: "profile_pic_url",
		},
		{
			name: "already snake",
			key:  "user_id",
			want: "user_id",
		},
		{
			name: "uppercase run splits letter by letter",
			key:  "URLPath",
			want: "u_r_l_path",
		},
		{
			name: "leading uppercase gets no underscore",
			key:  "Id",
			want: "id",
		},
		{
			name: "empty key",
			key:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToSnake(tt.key))
		})
	}
}

func TestCamelKeys(t *testing.T) {
	in := map[string]interface{}{
		"user_id":     float64(1),
		"profile_pic": "x",
	}

	got := CamelKeys(in)

	require.Equal(t, map[string]interface{}{
		"userId":     float64(1),
		"profilePic": "x",
	}, got)

	// Input is never mutated.
	require.Contains(t, in, "user_id")
	require.NotContains(t, in, "userId")
}

func TestSnakeKeys(t *testing.T) {
	got := SnakeKeys(map[string]interface{}{
		"userId":     float64(1),
		"profilePic": "x",
	})

	require.Equal(t, map[string]interface{}{
		"user_id":     float64(1),
		"profile_pic": "x",
	}, got)
}

func TestConvertKeys_Nested(t *testing.T) {
	in := map[string]interface{}{
		"first_name": "John",
		"attachment": map[string]interface{}{
			"payload_type": "image",
			"quick_replies": []interface{}{
				map[string]interface{}{"content_type": "text"},
				map[string]interface{}{"content_type": "location"},
			},
		},
	}

	got := ConvertKeys(in, Camel)

	require.Equal(t, map[string]interface{}{
		"firstName": "John",
		"attachment": map[string]interface{}{
			"payloadType": "image",
			"quickReplies": []interface{}{
				map[string]interface{}{"contentType": "text"},
				map[string]interface{}{"contentType": "location"},
			},
		},
	}, got)
}

func TestConvertKeys_SequenceElementWise(t *testing.T) {
	got := ConvertKeys([]interface{}{
		map[string]interface{}{"a_b": float64(1)},
	}, Camel)

	require.Equal(t, []interface{}{
		map[string]interface{}{"aB": float64(1)},
	}, got)
}

func TestConvertKeys_ScalarsPassThrough(t *testing.T) {
	require.Equal(t, "hello", ConvertKeys("hello", Snake))
	require.Equal(t, float64(42), ConvertKeys(float64(42), Camel))
	require.Equal(t, true, ConvertKeys(true, Camel))
	require.Nil(t, ConvertKeys(nil, Snake))
}

func TestConvertKeys_OpaquePayloads(t *testing.T) {
	blob := []byte{0x89, 0x50, 0x4e, 0x47}
	raw := json.RawMessage(`{"keep_me":"as_is"}`)
	wrapped := Opaque{Value: map[string]interface{}{"do_not_touch": true}}

	in := map[string]interface{}{
		"file_data":  blob,
		"raw_body":   raw,
		"payload":    wrapped,
		"plain_key":  "v",
	}

	got := ConvertKeys(in, Camel).(map[string]interface{})

	// Sibling keys are converted, opaque values keep their identity.
	require.Contains(t, got, "fileData")
	require.Contains(t, got, "rawBody")
	require.Contains(t, got, "plainKey")

	outBlob := got["fileData"].([]byte)
	assert.True(t, &blob[0] == &outBlob[0], "blob must keep its backing array")

	outRaw := got["rawBody"].(json.RawMessage)
	assert.True(t, &raw[0] == &outRaw[0], "raw message must keep its backing array")

	outWrapped := got["payload"].(Opaque)
	assert.Contains(t, outWrapped.Value.(map[string]interface{}), "do_not_touch")
}

func TestConvertKeys_Idempotent(t *testing.T) {
	in := map[string]interface{}{
		"user_id": float64(1),
		"nested": map[string]interface{}{
			"a__b":     "x",
			"deep_key": []interface{}{map[string]interface{}{"inner_key": float64(2)}},
		},
	}

	for _, conv := range []Convention{Snake, Camel} {
		t.Run(conv.String(), func(t *testing.T) {
			once := ConvertKeys(in, conv)
			twice := ConvertKeys(once, conv)
			require.Equal(t, once, twice)
		})
	}
}

func TestConvertKeys_RoundTrip(t *testing.T) {
	in := map[string]interface{}{
		"userId":     float64(1),
		"profilePic": "x",
		"a_B":        "doubled underscore round-trips",
	}

	require.Equal(t, in, ConvertKeys(ConvertKeys(in, Snake), Camel))
}
