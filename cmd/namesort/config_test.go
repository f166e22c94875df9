package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNoConfigFile(t *testing.T) {
	writer := bytes.NewBuffer([]byte{})
	require.NoError(t, printConfigFile(defaultConfig(), writer))

	conf := make(map[string]interface{})
	require.NoError(t, yaml.Unmarshal(writer.Bytes(), &conf))

	assert.Equal(t, "names.txt", conf["file"])
	assert.Equal(t, 20, conf["max"])
	assert.Equal(t, false, conf["natural"])
	assert.Equal(t, "", conf["encoding"])
	assert.Equal(t, false, conf["allow-missing"])
	assert.Equal(t, false, conf["verbose"])
	assert.Equal(t, false, conf["json-logs"])
}

func TestPrintConfigFromFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".namesort.yaml", []byte("max: 5\nnatural: true\nencoding: latin1\n"), 0644))

	out, err := execute(t, nil, "print-config")
	require.NoError(t, err)

	conf := SortConfig{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &conf))
	assert.Equal(t, 5, conf.Max)
	assert.True(t, conf.Natural)
	assert.Equal(t, "latin1", conf.Encoding)
	assert.Equal(t, "names.txt", conf.File)
}

func TestPrintConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NAMESORT_MAX", "7")
	t.Setenv("NAMESORT_ALLOW_MISSING", "true")

	out, err := execute(t, nil, "print-config")
	require.NoError(t, err)

	conf := SortConfig{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &conf))
	assert.Equal(t, 7, conf.Max)
	assert.True(t, conf.AllowMissing)
}

func TestBadConfigValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NAMESORT_MAX", "lots")

	_, err := execute(t, nil, "sort", "names.txt")
	assert.ErrorContains(t, err, "config max")
}

func TestFileFromConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".namesort.yaml", []byte("file: other.txt\n"), 0644))
	require.NoError(t, os.WriteFile("other.txt", []byte("b\na\n"), 0644))

	out, err := execute(t, nil, "sort")
	require.NoError(t, err)
	assert.Equal(t, "0\na\nb\n", out)

	out, err = execute(t, nil, "print-config")
	require.NoError(t, err)
	conf := SortConfig{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &conf))
	assert.Equal(t, "other.txt", conf.File)
}

func TestFileFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("NAMESORT_FILE", "other.txt")
	require.NoError(t, os.WriteFile("other.txt", []byte("d\nc\n"), 0644))
	require.NoError(t, os.WriteFile("third.txt", []byte("z\ny\n"), 0644))

	out, err := execute(t, nil, "sort")
	require.NoError(t, err)
	assert.Equal(t, "0\nc\nd\n", out)

	// the positional argument wins over the configured file
	out, err = execute(t, nil, "sort", "third.txt")
	require.NoError(t, err)
	assert.Equal(t, "0\ny\nz\n", out)

	out, err = execute(t, nil, "print-config")
	require.NoError(t, err)
	assert.Contains(t, out, "file: other.txt")
}

func TestFileFlag(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("list.txt", []byte("2\n1\n"), 0644))

	out, err := execute(t, nil, "sort", "--file", "list.txt")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}
