package notify_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"plansfs/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSinkJSONLines(t *testing.T) {
	var buf bytes.Buffer
	sink := notify.NewWriterSink(&buf)

	sink.Send(notify.NewInit("/home/u/.claude/plans"))
	sink.Send(notify.NewWrite("/home/u/.claude/plans/x.md", "# Plan"))
	sink.Send(notify.NewUnlink("/home/u/.claude/plans/x.md"))

	scanner := bufio.NewScanner(&buf)
	var lines []map[string]any
	for scanner.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m))
		lines = append(lines, m)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, lines, 3)

	init := lines[0]
	assert.Equal(t, "vfs_init", init["type"])
	assert.Equal(t, "/home/u/.claude/plans", init["plansDir"])
	assert.Equal(t, "virtual", init["mode"])
	assert.Contains(t, init, "timestamp")

	write := lines[1]
	assert.Equal(t, "vfs_write", write["type"])
	assert.Equal(t, "/home/u/.claude/plans/x.md", write["path"])
	assert.Equal(t, "x.md", write["filename"])
	assert.Equal(t, "# Plan", write["content"])
	assert.EqualValues(t, len("# Plan"), write["size"])

	unlink := lines[2]
	assert.Equal(t, "vfs_unlink", unlink["type"])
	assert.Equal(t, "x.md", unlink["filename"])
	assert.NotContains(t, unlink, "content")
	assert.NotContains(t, unlink, "size")
}

func TestEventConstructors(t *testing.T) {
	write := notify.NewWrite("/p/empty.md", "")
	assert.Equal(t, notify.TypeWrite, write.EventType())
	assert.Zero(t, write.Size)

	plan := notify.NewPlanWrite("/p/x.md", "body")
	assert.Equal(t, notify.TypePlanWrite, plan.Type)
	assert.Equal(t, "body", plan.Content)
	assert.Equal(t, 4, plan.Size)

	read := notify.NewRead("/p/x.md", 4)
	assert.Equal(t, notify.TypeRead, read.Type)
	assert.Equal(t, "x.md", read.Filename)

	errEvent := notify.NewError("unlink_original", "/p/x.md", assert.AnError)
	assert.Equal(t, notify.TypeError, errEvent.Type)
	assert.Equal(t, "unlink_original", errEvent.Operation)
	assert.Equal(t, assert.AnError.Error(), errEvent.Error)
	assert.NotZero(t, errEvent.Timestamp)
}

func TestWriterSinkSwallowsEncodeErrors(t *testing.T) {
	sink := notify.NewWriterSink(errWriter{})

	// Must not panic or surface the failure.
	sink.Send(notify.NewUnlink("/p/x.md"))
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		nop   bool
	}{
		{
			name:  "unset",
			value: "",
			nop:   true,
		},
		{
			name:  "not a number",
			value: "pipe",
			nop:   true,
		},
		{
			name:  "negative",
			value: "-1",
			nop:   true,
		},
		{
			name:  "valid fd",
			value: "1",
			nop:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(notify.EventFdEnv, tt.value)

			sink := notify.FromEnv()
			_, isNop := sink.(notify.NopSink)
			assert.Equal(t, tt.nop, isNop)
		})
	}
}

func TestNopSink(t *testing.T) {
	notify.NopSink{}.Send(notify.NewInit("/p"))
}
