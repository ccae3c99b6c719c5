package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRecognizedFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "response field",
			body: `{"response":"Paris"}`,
			want: "Paris",
		},
		{
			name: "answer field",
			body: `{"answer":"Madrid"}`,
			want: "Madrid",
		},
		{
			name: "text field",
			body: `{"text":"hello"}`,
			want: "hello",
		},
		{
			name: "priority order wins",
			body: `{"answer":"second","response":"first"}`,
			want: "first",
		},
		{
			name: "non-string field skipped",
			body: `{"response":42,"answer":"Madrid"}`,
			want: "Madrid",
		},
		{
			name: "data as string",
			body: `{"data":"plain"}`,
			want: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract([]byte(tt.body)))
		})
	}
}

func TestExtractBareString(t *testing.T) {
	// A JSON string decodes to a string value and is returned unchanged.
	assert.Equal(t, "just text", Extract([]byte(`"just text"`)))
}

func TestExtractNonJSONReturnedVerbatim(t *testing.T) {
	assert.Equal(t, "not json at all", Extract([]byte("not json at all")))
}

func TestExtractDataWrapperRecursion(t *testing.T) {
	body := `{"data":{"answer":"nested"}}`
	assert.Equal(t, "nested", Extract([]byte(body)))
}

func TestExtractDataWrapperTwoLevels(t *testing.T) {
	body := `{"data":{"data":{"response":"deep"}}}`
	assert.Equal(t, "deep", Extract([]byte(body)))
}

func TestExtractFallbackSerializesPayload(t *testing.T) {
	body := `{"unknown":"field"}`
	assert.Equal(t, `{"unknown":"field"}`, Extract([]byte(body)))
}

func TestExtractFallbackKeepsDataWrapper(t *testing.T) {
	// When recursion into a data object finds nothing, the fallback
	// serializes the whole payload, wrapper included.
	body := `{"data":{"foo":1}}`
	assert.Equal(t, `{"data":{"foo":1}}`, Extract([]byte(body)))
}

func TestExtractFallbackOnNonObject(t *testing.T) {
	assert.Equal(t, `[1,2,3]`, Extract([]byte(`[1,2,3]`)))
	assert.Equal(t, `42`, Extract([]byte(`42`)))
}

func TestFromValueString(t *testing.T) {
	assert.Equal(t, "direct", FromValue("direct"))
}

func TestFromValueObject(t *testing.T) {
	v := map[string]any{"reply": "from map"}
	assert.Equal(t, "from map", FromValue(v))
}
