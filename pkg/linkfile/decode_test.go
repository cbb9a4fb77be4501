package linkfile

import (
	"testing"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesDeclarationOrder(t *testing.T) {
	data := []byte(`
zshrc = "~/.zshrc"
vimrc = "~/.vimrc"
"config/nvim" = ".config/nvim"
bashrc = ".bashrc"
`)

	decls, err := Decode(data)
	require.NoError(t, err)

	keys := make([]string, len(decls))
	for i, d := range decls {
		keys[i] = d.Key
	}
	assert.Equal(t, []string{"zshrc", "vimrc", "config/nvim", "bashrc"}, keys)
	assert.Equal(t, "~/.zshrc", decls[0].Value)
}

func TestDecode_NonStringValues(t *testing.T) {
	data := []byte(`
version = 2
vimrc = "~/.vimrc"
enabled = true
hosts = ["a", "b"]
inline = { a = "b" }
dotted.key = "x"

[meta]
author = "me"
`)

	decls, err := Decode(data)
	require.NoError(t, err)

	keys := make([]string, len(decls))
	for i, d := range decls {
		keys[i] = d.Key
	}
	assert.Equal(t, []string{"version", "vimrc", "enabled", "hosts", "inline", "dotted", "meta"}, keys)
	assert.Equal(t, int64(2), decls[0].Value)
	assert.IsType(t, map[string]interface{}{}, decls[6].Value)
}

func TestDecode_KeysInsideTablesAreNotTopLevel(t *testing.T) {
	data := []byte(`
vimrc = "~/.vimrc"

[section]
gitconfig = "~/.gitconfig"
`)

	decls, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "vimrc", decls[0].Key)
	assert.Equal(t, "section", decls[1].Key)
}

func TestDecode_QuotedKeys(t *testing.T) {
	decls, err := Decode([]byte(`"my dir/init.vim" = "~/.vim/init.vim"`))
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "my dir/init.vim", decls[0].Key)
}

func TestDecode_Empty(t *testing.T) {
	decls, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unterminated string", `vimrc = "~/.vimrc`},
		{"missing value", `vimrc =`},
		{"duplicate key", "vimrc = \"a\"\nvimrc = \"b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}
}
