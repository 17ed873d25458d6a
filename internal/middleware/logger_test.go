package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/backend/pkg/testutil"
	"github.com/taskhive/backend/pkg/xcontext"
)

type captureLogger struct {
	lines []string
}

func (l *captureLogger) Debugf(msg string, a ...any) { l.lines = append(l.lines, fmt.Sprintf(msg, a...)) }
func (l *captureLogger) Infof(msg string, a ...any)  { l.lines = append(l.lines, fmt.Sprintf(msg, a...)) }
func (l *captureLogger) Warnf(msg string, a ...any)  { l.lines = append(l.lines, fmt.Sprintf(msg, a...)) }
func (l *captureLogger) Errorf(msg string, a ...any) { l.lines = append(l.lines, fmt.Sprintf(msg, a...)) }

func Test_Logger_PathWithPercent(t *testing.T) {
	ctx := testutil.MockContext()

	// A percent sign in the decoded path must come through literally, not be
	// interpreted as a formatting verb.
	req := httptest.NewRequest("GET", "/getTasks%2520", nil)
	logged := &captureLogger{}
	ctx = xcontext.WithLogger(ctx, logged)
	ctx = xcontext.WithHTTPRequest(ctx, req)

	Logger()(ctx)

	require.Len(t, logged.lines, 1)
	require.Equal(t, "GET | /getTasks%20", logged.lines[0])
}
