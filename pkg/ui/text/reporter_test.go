package text_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/entry"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/reconcile"
	"github.com/arthur-debert/dotlink/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(op reconcile.Operation, status entry.Status, action reconcile.Action) reconcile.Event {
	return reconcile.Event{
		Operation: op,
		Linkfile:  "/repo/links.toml",
		Src:       "/repo/vimrc",
		Dst:       "/home/u/.vimrc",
		Status:    status,
		Action:    action,
	}
}

func TestReporter(t *testing.T) {
	occupied := event(reconcile.OperationLink, entry.Occupied, reconcile.ActionRefuse)
	occupied.Err = errors.New(errors.ErrOccupied, "/home/u/.vimrc exists and is not a symlink")

	createFailed := event(reconcile.OperationLink, entry.Unlinked, reconcile.ActionCreate)
	createFailed.Err = errors.New(errors.ErrLinkCreate, "cannot create symlink /home/u/.vimrc")

	dryRun := event(reconcile.OperationClean, entry.Healthy, reconcile.ActionRemove)
	dryRun.DryRun = true

	tests := []struct {
		name    string
		event   reconcile.Event
		verbose bool
		want    string
	}{
		{
			name:  "check problem",
			event: event(reconcile.OperationCheck, entry.Unlinked, reconcile.ActionNone),
			want:  "✘ /home/u/.vimrc (Unlinked)\n",
		},
		{
			name:  "check healthy is quiet",
			event: event(reconcile.OperationCheck, entry.Healthy, reconcile.ActionNone),
			want:  "",
		},
		{
			name:    "check healthy verbose",
			event:   event(reconcile.OperationCheck, entry.Healthy, reconcile.ActionNone),
			verbose: true,
			want:    "✓ /home/u/.vimrc\n  => /repo/vimrc\n",
		},
		{
			name:    "link already healthy",
			event:   event(reconcile.OperationLink, entry.Healthy, reconcile.ActionNone),
			verbose: true,
			want:    "/home/u/.vimrc\n  the link has already existed.\n",
		},
		{
			name:    "link created",
			event:   event(reconcile.OperationLink, entry.Unlinked, reconcile.ActionCreate),
			verbose: true,
			want:    "/home/u/.vimrc\n  => /repo/vimrc\n",
		},
		{
			name:  "link created is quiet",
			event: event(reconcile.OperationLink, entry.Unlinked, reconcile.ActionCreate),
			want:  "",
		},
		{
			name:  "occupied refused",
			event: occupied,
			want:  "✘ /home/u/.vimrc (Occupied)\n",
		},
		{
			name:  "create failed",
			event: createFailed,
			want:  "✘ /home/u/.vimrc (LINK_CREATE)\n  [LINK_CREATE] cannot create symlink /home/u/.vimrc\n",
		},
		{
			name:    "clean removed",
			event:   event(reconcile.OperationClean, entry.Mismatched, reconcile.ActionRemove),
			verbose: true,
			want:    "unlink /home/u/.vimrc\n",
		},
		{
			name:    "clean nothing to do",
			event:   event(reconcile.OperationClean, entry.Unlinked, reconcile.ActionNone),
			verbose: true,
			want:    "",
		},
		{
			name:    "clean dry run",
			event:   dryRun,
			verbose: true,
			want:    "unlink /home/u/.vimrc (dry run)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := text.New(&buf, tt.verbose)

			r.Report(tt.event)

			require.NoError(t, r.Err())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReporter_BeginLinkfile(t *testing.T) {
	var buf bytes.Buffer
	text.New(&buf, false).BeginLinkfile(reconcile.OperationCheck, "/repo/links.toml")
	assert.Empty(t, buf.String())

	text.New(&buf, true).BeginLinkfile(reconcile.OperationCheck, "/repo/links.toml")
	assert.Equal(t, "Loading /repo/links.toml ...\n", buf.String())
}

func TestReporter_Painter(t *testing.T) {
	var buf bytes.Buffer
	paint := func(style, s string) string { return "<" + style + ">" + s }

	text.NewStyled(&buf, false, paint).Report(event(reconcile.OperationCheck, entry.Mismatched, reconcile.ActionNone))

	assert.Equal(t, "<Error>✘ <FilePath>/home/u/.vimrc (Mismatched)\n", buf.String())
}

func TestKind(t *testing.T) {
	ev := event(reconcile.OperationCheck, entry.Unlinked, reconcile.ActionNone)
	ev.Err = errors.New(errors.ErrFileAccess, "cannot inspect")
	assert.Equal(t, "FILE_ACCESS", text.Kind(ev))
}
