package launcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-storage-chain/genesis"
	"github.com/rony4d/go-storage-chain/integration"
)

var testRuntime = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func runApp(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	a := newApp()
	a.Writer = stdout
	a.ErrWriter = stderr
	err = a.Run(append([]string{"chainspec"}, args...))
	return
}

func writeRuntime(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "runtime.wasm")
	require.NoError(t, os.WriteFile(path, testRuntime, 0o644))
	return path
}

type specOut struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	ChainType string `json:"chainType"`
	Genesis   struct {
		Runtime genesis.Document `json:"runtime"`
	} `json:"genesis"`
}

func TestBuildSpecStdout(t *testing.T) {
	require := require.New(t)

	stdout, stderr, err := runApp(t, "build-spec", "--chain", "local", "--runtime", writeRuntime(t))
	require.NoError(err)

	var spec specOut
	require.NoError(json.Unmarshal(stdout.Bytes(), &spec))
	require.Equal("local_testnet", spec.ID)
	require.Equal("Local", spec.ChainType)
	require.Equal(testRuntime, []byte(spec.Genesis.Runtime.System.Code))
	require.Len(spec.Genesis.Runtime.Session.Keys, 2)
	require.Empty(spec.Genesis.Runtime.Finality.Authorities)

	want, err := integration.LocalTestnet(testRuntime).Genesis()
	require.NoError(err)
	hash, err := want.Hash()
	require.NoError(err)
	require.Contains(stderr.String(), "Chain spec written")
	require.Contains(stderr.String(), hash.Hex())
}

func TestBuildSpecOutputFile(t *testing.T) {
	require := require.New(t)

	out := filepath.Join(t.TempDir(), "dev.json")
	stdout, _, err := runApp(t, "--log.verbosity", "0", "build-spec",
		"--runtime", writeRuntime(t), "--output", out, "--finality.authorities")
	require.NoError(err)
	require.Empty(stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(err)

	var spec specOut
	require.NoError(json.Unmarshal(data, &spec))
	require.Equal("dev", spec.ID)
	require.Len(spec.Genesis.Runtime.Finality.Authorities, 1)
}

func TestBuildSpecErrors(t *testing.T) {
	_, _, err := runApp(t, "build-spec", "--runtime", filepath.Join(t.TempDir(), "missing.wasm"))
	require.True(t, errors.Is(err, genesis.ErrMissingRuntimeArtifact), "got %v", err)

	_, _, err = runApp(t, "build-spec", "--chain", "mainnet", "--runtime", writeRuntime(t))
	require.True(t, errors.Is(err, integration.ErrUnknownChain), "got %v", err)

	_, _, err = runApp(t, "--log.format", "xml", "build-spec", "--runtime", writeRuntime(t))
	require.Error(t, err)
}

func TestList(t *testing.T) {
	stdout, _, err := runApp(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Equal(t, []string{
		"dev\tDevelopment\tDevelopment",
		"local_testnet\tLocal Testnet\tLocal",
	}, lines)
}
