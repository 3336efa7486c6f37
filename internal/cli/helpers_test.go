package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeConfig writes a config that keeps the snapshot and logs inside a temp
// dir. Extra YAML is appended verbatim.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	body := fmt.Sprintf(`
ledger:
  owner: CONTRACT_OWNER
  genesisHeight: 100
  blockInterval: 10s
webServer:
  host: 127.0.0.1
  port: 18090
persistence:
  filePath: %s
  saveInterval: 30s
logger:
  level: info
  mode: 420
  dir: %s
metrics:
  enabled: false
%s`, filepath.Join(dir, "ledger.dat"), filepath.Join(dir, "logs"), extra)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(buf.String()), err
}
