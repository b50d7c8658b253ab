package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkbook/networkbook/internal/buildinfo"
)

func runVersion(t *testing.T, asJSON bool) string {
	t.Helper()
	prevJSON := jsonOutput
	t.Cleanup(func() {
		jsonOutput = prevJSON
		versionCmd.SetOut(nil)
	})
	jsonOutput = asJSON

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	require.NoError(t, versionCmd.RunE(versionCmd, nil))
	return buf.String()
}

func TestVersionCommandText(t *testing.T) {
	out := runVersion(t, false)
	info := buildinfo.Current()

	assert.True(t, strings.HasPrefix(out, "nb "+info.Version+"\n"), out)
	assert.Contains(t, out, "platform: "+info.Platform())
}

func TestVersionCommandJSON(t *testing.T) {
	out := runVersion(t, true)

	var resp struct {
		OK   bool           `json:"ok"`
		Data buildinfo.Info `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	assert.True(t, resp.OK)
	assert.Equal(t, buildinfo.Current(), resp.Data)
}
