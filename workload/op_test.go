package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Op
		wantOk  bool
		wantErr error
	}{
		{name: "blank", line: "   "},
		{name: "comment", line: "# set a 1"},
		{name: "comment without space", line: "#x"},
		{name: "set", line: "set a 1", want: Op{Kind: KindSet, Key: "a", Value: "1"}, wantOk: true},
		{name: "upper case", line: "SET a 1", want: Op{Kind: KindSet, Key: "a", Value: "1"}, wantOk: true},
		{name: "extra whitespace", line: "\tget   a \r", want: Op{Kind: KindGet, Key: "a"}, wantOk: true},
		{name: "remove", line: "remove a", want: Op{Kind: KindRemove, Key: "a"}, wantOk: true},
		{name: "del alias", line: "del a", want: Op{Kind: KindRemove, Key: "a"}, wantOk: true},
		{name: "load", line: "load", want: Op{Kind: KindLoad}, wantOk: true},
		{name: "unknown", line: "put a 1", wantErr: ErrUnknownOp},
		{name: "set without value", line: "set a", wantErr: ErrMissingValue},
		{name: "set without key", line: "set", wantErr: ErrMissingKey},
		{name: "get without key", line: "get", wantErr: ErrMissingKey},
		{name: "get with value", line: "get a 1", wantErr: ErrTooManyArgs},
		{name: "load with key", line: "load a", wantErr: ErrTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok, err := ParseOp(tt.line)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "set", KindSet.String())
	assert.Equal(t, "remove", KindRemove.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
