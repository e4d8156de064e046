package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should decode the tool envelope printed by JSON.stringify", func(t *testing.T) {
		src := `{
  "error": 0,
  "msg": "balance success",
  "data": {
    "balance": {"blockCount": "12", "balanceInfoMap": {}},
    "unreceived": {"blockCount": "2"}
  }
}`

		v, err := Parse(src)
		require.NoError(t, err)

		expected := map[string]any{
			"error": int64(0),
			"msg":   "balance success",
			"data": map[string]any{
				"balance":    map[string]any{"blockCount": "12", "balanceInfoMap": map[string]any{}},
				"unreceived": map[string]any{"blockCount": "2"},
			},
		}
		assert.Equal(t, expected, v)
	})

	t.Run("should decode scalars", func(t *testing.T) {
		cases := map[string]any{
			`null`:        nil,
			`None`:        nil,
			`undefined`:   nil,
			`true`:        true,
			`True`:        true,
			`false`:       false,
			`False`:       false,
			`42`:          int64(42),
			`-7`:          int64(-7),
			`1.5`:         1.5,
			`2e3`:         2000.0,
			`"text"`:      "text",
			`'single'`:    "single",
			`  "pad"  `:   "pad",
			`"a\"b"`:      `a"b`,
			`'it\'s'`:     "it's",
			`"é\n"`:  "é\n",
			`"😀"`: "😀",
		}

		for src, expected := range cases {
			v, err := Parse(src)
			require.NoError(t, err, "input %s", src)
			assert.Equal(t, expected, v, "input %s", src)
		}
	})

	t.Run("should decode node inspection output", func(t *testing.T) {
		src := `{ error: 1, msg: 'connection timeout', data: null, list: [1, 2, ], }`

		v, err := Parse(src)
		require.NoError(t, err)

		expected := map[string]any{
			"error": int64(1),
			"msg":   "connection timeout",
			"data":  nil,
			"list":  []any{int64(1), int64(2)},
		}
		assert.Equal(t, expected, v)
	})

	t.Run("should fall back to float64 for integers beyond int64", func(t *testing.T) {
		v, err := Parse(`100000000000000000000`)
		require.NoError(t, err)
		assert.Equal(t, 1e20, v)
	})

	t.Run("should decode empty containers", func(t *testing.T) {
		v, err := Parse(`[]`)
		require.NoError(t, err)
		assert.Equal(t, []any{}, v)

		v, err = Parse(`{}`)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, v)
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		cases := []string{
			``,
			`   `,
			`{`,
			`[1, 2`,
			`{"a" 1}`,
			`{"a": }`,
			`"unterminated`,
			`[1 2]`,
			`nil`,
			`print("x")`,
			`1.`,
			`-`,
			`"\x"`,
			`{"a": 1} trailing`,
			"\"line\nbreak\"",
		}

		for _, src := range cases {
			_, err := Parse(src)
			require.Error(t, err, "input %q", src)

			var syntaxErr *SyntaxError
			assert.ErrorAs(t, err, &syntaxErr, "input %q", src)
		}
	})

	t.Run("should bound nesting depth", func(t *testing.T) {
		src := ""
		for range maxDepth + 1 {
			src += "["
		}

		_, err := Parse(src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nesting deeper")
	})
}

func TestLookup(t *testing.T) {
	data := map[string]any{
		"balance": map[string]any{"blockCount": "12"},
	}

	t.Run("should find nested values", func(t *testing.T) {
		v, ok := Lookup(data, "balance", "blockCount")
		require.True(t, ok)
		assert.Equal(t, "12", v)
	})

	t.Run("should report missing paths", func(t *testing.T) {
		_, ok := Lookup(data, "unreceived", "blockCount")
		assert.False(t, ok)

		_, ok = Lookup(data, "balance", "blockCount", "deeper")
		assert.False(t, ok)

		_, ok = Lookup(nil, "balance")
		assert.False(t, ok)
	})

	t.Run("should return the value itself for an empty path", func(t *testing.T) {
		v, ok := Lookup("x")
		require.True(t, ok)
		assert.Equal(t, "x", v)
	})
}

func TestInt(t *testing.T) {
	cases := []struct {
		in   any
		want int64
		ok   bool
	}{
		{int64(4), 4, true},
		{4.0, 4, true},
		{4.5, 0, false},
		{"17", 17, true},
		{" 3 ", 3, true},
		{"abc", 0, false},
		{nil, 0, false},
		{true, 0, false},
		{1e300, 0, false},
	}

	for _, c := range cases {
		got, ok := Int(c.in)
		assert.Equal(t, c.ok, ok, "input %v", c.in)
		assert.Equal(t, c.want, got, "input %v", c.in)
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(int64(0)))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(""))

	assert.True(t, Truthy(true))
	assert.True(t, Truthy(int64(1)))
	assert.True(t, Truthy("error"))
	assert.True(t, Truthy(map[string]any{}))
}
