package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type timeouts struct {
	Read  Duration `json:"read" yaml:"read" toml:"read"`
	Write Duration `json:"write,omitempty" yaml:"write,omitempty" toml:"write,omitempty"`
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{input: "250ms", expected: 250 * time.Millisecond},
		{input: "30s", expected: 30 * time.Second},
		{input: "1h30m", expected: 90 * time.Minute},
		{input: "-5s", expected: -5 * time.Second},
		{input: "0", expected: 0},
		{input: "30", wantErr: true},
		{input: "thirty seconds", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				require.ErrorContains(t, err, "invalid duration")
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDuration_ConfigFormats(t *testing.T) {
	expected := timeouts{Read: NewDuration(15 * time.Second), Write: NewDuration(time.Minute)}

	t.Run("json", func(t *testing.T) {
		var got timeouts
		require.NoError(t, json.Unmarshal([]byte(`{"read": "15s", "write": "1m"}`), &got))
		require.Equal(t, expected, got)

		out, err := json.Marshal(got)
		require.NoError(t, err)
		require.JSONEq(t, `{"read": "15s", "write": "1m0s"}`, string(out))
	})

	t.Run("yaml", func(t *testing.T) {
		var got timeouts
		require.NoError(t, yaml.Unmarshal([]byte("read: 15s\nwrite: 1m\n"), &got))
		require.Equal(t, expected, got)

		out, err := yaml.Marshal(got)
		require.NoError(t, err)
		require.Equal(t, "read: 15s\nwrite: 1m0s\n", string(out))
	})

	t.Run("toml", func(t *testing.T) {
		var got timeouts
		_, err := toml.Decode("read = \"15s\"\nwrite = \"1m\"\n", &got)
		require.NoError(t, err)
		require.Equal(t, expected, got)
	})

	t.Run("invalid json", func(t *testing.T) {
		var got timeouts
		require.Error(t, json.Unmarshal([]byte(`{"read": 15}`), &got))
	})
}

func TestDuration_JSONSchema(t *testing.T) {
	schema := Duration{}.JSONSchema()
	require.Equal(t, "string", schema.Type)
	require.Contains(t, schema.Examples, "30s")
}
