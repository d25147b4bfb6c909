package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-payroll/internal/leave"
	leaveerrors "go-payroll/internal/leave/errors"
)

type fakeLeaveService struct {
	applyFn   func(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error)
	getAllFn  func(ctx context.Context) ([]leave.LeaveResponse, error)
	approveFn func(ctx context.Context, id int64) (leave.LeaveResponse, error)
	rejectFn  func(ctx context.Context, id int64) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	return f.applyFn(ctx, req)
}
func (f *fakeLeaveService) GetAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeLeaveService) Approve(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, id)
}
func (f *fakeLeaveService) Reject(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, id)
}

func newLeaveRouter(svc leave.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(svc))
	return r
}

func TestLeaveHandler_Apply(t *testing.T) {
	svc := &fakeLeaveService{
		applyFn: func(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, "2024-03-04", req.StartDate)
			return leave.LeaveResponse{ID: 1, EmployeeID: req.EmployeeID, Status: leave.StatusPending}, nil
		},
	}
	r := newLeaveRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", strings.NewReader(`{"employee_id":1,"start_date":"2024-03-04","end_date":"2024-03-05","reason":"trip"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Pending"`)
}

func TestLeaveHandler_ApproveReject(t *testing.T) {
	svc := &fakeLeaveService{
		approveFn: func(ctx context.Context, id int64) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{ID: id, Status: leave.StatusApproved}, nil
		},
		rejectFn: func(ctx context.Context, id int64) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		},
	}
	r := newLeaveRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leaves/3/approve", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Approved")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leaves/3/reject", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leaves/abc/approve", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
