package contextutil_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"go-payroll/internal/shared/contextutil"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-1")
	assert.Equal(t, "REQ-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestGetLogger_Fallbacks(t *testing.T) {
	base := zap.NewExample()
	assert.Same(t, base, contextutil.GetLogger(context.Background(), base))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, base))
}

func TestNewOperation_AssignsFreshRequestID(t *testing.T) {
	a := contextutil.NewOperation(context.Background(), zap.NewNop(), "employees.add")
	b := contextutil.NewOperation(context.Background(), zap.NewNop(), "employees.add")

	_, err := uuid.Parse(contextutil.GetRequestID(a))
	assert.NoError(t, err)
	assert.NotEqual(t, contextutil.GetRequestID(a), contextutil.GetRequestID(b))
}
