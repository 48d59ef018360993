package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"

	"github.com/factorykit/offspring/types"
)

const initMsg = `{"count":3,"factory":{"address":"secret1abc","code_hash":"deadbeef"},"label":"mygroup","owner":"secret1xyz","description":"tuesday readers"}`

type CLITestSuite struct {
	suite.Suite
	home    string
	msgFile string
}

func TestCLI(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.home = s.T().TempDir()
	s.msgFile = filepath.Join(s.home, "init.json")
	s.Require().NoError(os.WriteFile(s.msgFile, []byte(initMsg), 0o600))
}

// run executes the root command against the suite's home directory. Flags
// given in args take precedence over the suite defaults.
func (s *CLITestSuite) run(stdin string, args ...string) (string, error) {
	rootCmd := RootCmd()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))

	for _, def := range []string{"--home=" + s.home, "--address-rule=basic", "--log-level=warn"} {
		name := def[:strings.Index(def, "=")+1]
		if !hasFlag(args, name) {
			args = append(args, def)
		}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func hasFlag(args []string, prefix string) bool {
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return true
		}
	}
	return false
}

func (s *CLITestSuite) Test_Validate() {
	out, err := s.run("", "validate", s.msgFile)
	s.Require().NoError(err)

	var cfg map[string]any
	s.Require().NoError(json.Unmarshal([]byte(out), &cfg))
	s.Equal("secret1xyz", cfg["owner"])
	s.Equal("tuesday readers", cfg["description"])
	s.EqualValues(3, cfg["count"])
}

func (s *CLITestSuite) Test_ValidateStdin() {
	out, err := s.run(`{"count":3}`, "validate", "-")
	s.Require().Error(err)
	s.Equal(types.MissingField{Field: "factory"}, err)
	s.JSONEq(`{"error":{"missing_field":{"field":"factory"}}}`, out)
}

func (s *CLITestSuite) Test_ValidateBech32() {
	// the example addresses are not checksummed, so the default rule refuses them
	_, err := s.run("", "validate", s.msgFile, "--address-rule=bech32")
	var ia types.InvalidAddress
	s.Require().ErrorAs(err, &ia)
	s.Equal("owner", ia.Field)
}

func (s *CLITestSuite) Test_Schema() {
	out, err := s.run("", "schema")
	s.Require().NoError(err)
	s.Contains(out, `"title": "InstantiateMsg"`)
}

func (s *CLITestSuite) Test_Lifecycle() {
	out, err := s.run("", "instantiate", s.msgFile, "--sender=secret1abc", "--contract-address=secret1offspring")
	s.Require().NoError(err)
	var res types.Response
	s.Require().NoError(json.Unmarshal([]byte(out), &res))
	s.Require().Len(res.Messages, 1)
	s.Equal("secret1abc", res.Messages[0].Wasm.Execute.ContractAddr)

	_, err = s.run("", "execute", `{"increment":{}}`, "--sender=secret1fred")
	s.Require().NoError(err)

	_, err = s.run("", "execute", `{"reset":{"count":10}}`, "--sender=secret1fred")
	s.Require().ErrorContains(err, "unauthorized")

	out, err = s.run("", "state")
	s.Require().NoError(err)
	var info struct {
		Owner    string      `json:"owner"`
		Address  string      `json:"address"`
		IsActive bool        `json:"is_active"`
		State    types.State `json:"state"`
	}
	s.Require().NoError(json.Unmarshal([]byte(out), &info))
	s.Equal("secret1xyz", info.Owner)
	s.Equal("secret1offspring", info.Address)
	s.True(info.IsActive)
	s.Equal(int32(4), info.State.Count)

	out, err = s.run("", "state", "--keys")
	s.Require().NoError(err)
	var keys []string
	s.Require().NoError(json.Unmarshal([]byte(out), &keys))
	s.ElementsMatch([]string{"active", "contract_addr", "factory_info", "owner", "state"}, keys)
}

func (s *CLITestSuite) Test_StateBeforeInstantiate() {
	_, err := s.run("", "state")
	s.Require().ErrorContains(err, "contract not instantiated")
}

func (s *CLITestSuite) Test_InvalidConfig() {
	_, err := s.run("", "schema", "--address-rule=base58")
	s.Require().ErrorContains(err, "unknown address rule")
}
