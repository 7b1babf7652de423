package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mergecov/mergecov/internal/adapter"
	"github.com/mergecov/mergecov/internal/controller"
	"github.com/mergecov/mergecov/internal/domain"
)

func TestNewMergeCmd(t *testing.T) {
	cmd := newMergeCmd()

	assert.Equal(t, "merge [reports...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("output"))
	assert.NotNil(t, cmd.Flags().Lookup("parallel"))
}

func TestMergeCmd_ForwardsArguments(t *testing.T) {
	mockWf := &mockWorkflow{}

	root := newRootCmd()
	root.AddCommand(newMergeCmd())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWf
	defer func() { workflow = originalWorkflow }()

	mockWf.On("Merge", mock.Anything, mock.MatchedBy(func(args domain.MergeArgs) bool {
		return len(args.Inputs) == 3 && args.Output == "" && args.Threads == 1
	})).Return(nil)

	root.SetArgs([]string{"merge", "a.xml", "b.xml", "c.xml"})
	err := root.Execute()
	require.NoError(t, err)

	mockWf.AssertExpectations(t)
}

func TestMergeCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	doc := `<?xml version='1.0' encoding='utf-8'?>
<coverage><packages><package name="p"><classes>
	<class name="c" filename="f.py"><lines><line number="1" hits="1"/></lines></class>
</classes></package></packages></coverage>`

	shard1 := filepath.Join(dir, "shard1.xml")
	shard2 := filepath.Join(dir, "shard2.xml")
	require.NoError(t, os.WriteFile(shard1, []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(shard2, []byte(doc), 0o644))

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.AddCommand(newMergeCmd())
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})

	runner := &cobra.Command{}
	runner.SetOut(out)
	runner.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(adapter.NewReportStore(), controller.NewSimpleUI(runner))
	defer func() { workflow = originalWorkflow }()

	root.SetArgs([]string{"merge", shard1, shard2})
	err := root.Execute()
	require.NoError(t, err)

	merged := out.String()
	assert.True(t, strings.HasPrefix(merged, "<?xml version='1.0' encoding='utf-8'?>"))
	assert.Contains(t, merged, `hits="2"`)
	assert.Contains(t, merged, `line-rate="1.0"`)
}
