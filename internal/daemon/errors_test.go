package daemon

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
		wantHint string
	}{
		{"missing socket", fmt.Errorf("dial: %w", os.ErrNotExist), ErrSocketNotFound, "taskboard daemon"},
		{"permission", fmt.Errorf("dial: %w", os.ErrPermission), ErrSocketPermission, "chmod 700"},
		{"refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), ErrConnectionRefused, "stale socket"},
		{"other", errors.New("weird"), ErrDaemonNotRunning, "taskboard daemon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Contains(t, got.Hint, tt.wantHint)
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), got.Message+". ")
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestRemoteError(t *testing.T) {
	err := &RemoteError{Command: CommandSaveTasks, Message: "disk full"}
	assert.Equal(t, "daemon save_tasks: disk full", err.Error())
}
