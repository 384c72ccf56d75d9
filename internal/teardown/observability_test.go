package teardown

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHookedObserver() (*ConsoleObserver, *logrustest.Hook) {
	logger, hook := logrustest.NewNullLogger()
	return &ConsoleObserver{entry: logrus.NewEntry(logger)}, hook
}

func TestConsoleObserver_Event(t *testing.T) {
	observer, hook := newHookedObserver()

	LogResourceDeleting(observer, "virtual machine", "vm1")
	LogResourceDeleted(observer, "virtual machine", "vm1")

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, logrus.InfoLevel, hook.Entries[0].Level)
	assert.Equal(t, "deleting virtual machine", hook.Entries[0].Message)
	assert.Equal(t, "resource.deleting", hook.Entries[0].Data["event"])
	assert.Equal(t, "vm1", hook.Entries[0].Data["resource"])
	assert.Equal(t, "virtual machine deleted", hook.Entries[1].Message)
	assert.False(t, hook.Entries[0].Time.IsZero())
}

func TestConsoleObserver_Warning(t *testing.T) {
	observer, hook := newHookedObserver()

	LogWarning(observer, "stor001", "owning resource group not found for storage account: stor001")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.Entries[0].Level)
	assert.Contains(t, hook.Entries[0].Message, "stor001")
}

func TestConsoleObserver_WithFields(t *testing.T) {
	observer, hook := newHookedObserver()

	scoped := observer.WithFields(map[string]string{"run": "abc123"})
	scoped.Printf("starting")

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "abc123", hook.Entries[0].Data["run"])

	// The parent observer is unchanged.
	observer.Printf("plain")
	assert.NotContains(t, hook.Entries[1].Data, "run")
}
