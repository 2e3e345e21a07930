package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"littlelemon/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderBacklogReader struct {
	mock.Mock
}

func (m *MockOrderBacklogReader) Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.OrderBacklog, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderBacklog), args.Error(1)
}

func jsonLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))
	return record
}

func TestOrderBacklogJob_Run(t *testing.T) {
	reader := &MockOrderBacklogReader{}
	reader.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderBacklog{Unassigned: 3, OutForDelivery: 2}, nil).Once()
	logger, buf := jsonLogger()

	NewOrderBacklogJob(reader, "", logger).Run(context.Background())

	record := lastRecord(t, buf)
	assert.Equal(t, "Order backlog", record["msg"])
	assert.Equal(t, "order_backlog_job", record["component"])
	assert.EqualValues(t, 3, record["unassigned"])
	assert.EqualValues(t, 2, record["out_for_delivery"])
	reader.AssertExpectations(t)
}

func TestOrderBacklogJob_RunLogsFailure(t *testing.T) {
	reader := &MockOrderBacklogReader{}
	reader.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderBacklog{}, errors.New("connection refused")).Once()
	logger, buf := jsonLogger()

	NewOrderBacklogJob(reader, "", logger).Run(context.Background())

	record := lastRecord(t, buf)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "connection refused", record["error"])
}

func TestOrderBacklogJob_Schedule(t *testing.T) {
	logger, _ := jsonLogger()

	job := NewOrderBacklogJob(&MockOrderBacklogReader{}, "", logger)
	assert.Equal(t, DefaultBacklogSchedule, job.schedule)

	assert.Error(t, NewOrderBacklogJob(&MockOrderBacklogReader{}, "every minute", logger).Start())
}

func TestJobManager_StartStop(t *testing.T) {
	logger, buf := jsonLogger()
	manager := NewJobManager(&MockOrderBacklogReader{}, "0 0 3 * * *", logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Order backlog job started")
	assert.Contains(t, buf.String(), "Order backlog job stopped")
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	logger, _ := jsonLogger()

	err := NewJobManager(&MockOrderBacklogReader{}, "61 * * * * *", logger).StartAll()
	assert.ErrorContains(t, err, "failed to start order backlog job")
}
