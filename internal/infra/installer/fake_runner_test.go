package installer

import (
	"context"
	"strings"
)

type recordedCall struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls  []recordedCall
	output []byte
	err    error
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, recordedCall{dir: dir, name: name, args: append([]string{}, args...)})
	return f.output, f.err
}

func (c recordedCall) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}
