// Package menu drives the interactive terminal session. Each menu level is a
// table of commands keyed by the character the operator types.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/contextutil"
)

const DefaultExportDir = "exports"

var errExit = errors.New("exit requested")

type Services struct {
	Employees  employee.Service
	Attendance attendance.Service
	Leaves     leave.Service
	Payroll    payroll.Service
}

type command struct {
	key   string
	label string
	name  string
	run   func(ctx context.Context) error
}

type level struct {
	title    string
	prompt   string
	commands []command
}

func (l level) find(key string) (command, bool) {
	for _, c := range l.commands {
		if c.key == key {
			return c, true
		}
	}
	return command{}, false
}

type Menu struct {
	svc       Services
	in        *bufio.Reader
	out       io.Writer
	exportDir string
	logger    *zap.Logger
	top       level
}

type Option func(*Menu)

func WithExportDir(dir string) Option {
	return func(m *Menu) {
		if dir != "" {
			m.exportDir = dir
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger.Named("menu")
		}
	}
}

func New(in io.Reader, out io.Writer, svc Services, opts ...Option) *Menu {
	m := &Menu{
		svc:       svc,
		in:        bufio.NewReader(in),
		out:       out,
		exportDir: DefaultExportDir,
		logger:    zap.L().Named("menu"),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.top = m.buildTop()
	return m
}

func (m *Menu) buildTop() level {
	sub := func(l level) func(ctx context.Context) error {
		return func(ctx context.Context) error { return m.runLevel(ctx, l) }
	}

	return level{
		title:  "--- Employee Payroll Management ---",
		prompt: "Enter choice: ",
		commands: []command{
			{key: "1", label: "Manage Employees", run: sub(level{
				title:  "Manage Employees",
				prompt: "Choice: ",
				commands: []command{
					{key: "a", label: "Add Employee", name: "employee.add", run: m.addEmployee},
					{key: "b", label: "View Employees", name: "employee.list", run: m.viewEmployees},
					{key: "c", label: "Update Employee", name: "employee.update", run: m.updateEmployee},
					{key: "d", label: "Delete Employee", name: "employee.delete", run: m.deleteEmployee},
				},
			})},
			{key: "2", label: "Attendance", run: sub(level{
				title:  "Attendance",
				prompt: "Choice: ",
				commands: []command{
					{key: "a", label: "Mark Attendance", name: "attendance.mark", run: m.markAttendance},
					{key: "b", label: "View Attendance", name: "attendance.list", run: m.viewAttendance},
				},
			})},
			{key: "3", label: "Leaves", run: sub(level{
				title:  "Leaves",
				prompt: "Choice: ",
				commands: []command{
					{key: "a", label: "Apply Leave", name: "leave.apply", run: m.applyLeave},
					{key: "b", label: "View Leaves", name: "leave.list", run: m.viewLeaves},
					{key: "c", label: "Approve Leave", name: "leave.approve", run: m.approveLeave},
					{key: "d", label: "Reject Leave", name: "leave.reject", run: m.rejectLeave},
				},
			})},
			{key: "4", label: "Payroll", run: sub(level{
				title:  "Payroll",
				prompt: "Choice: ",
				commands: []command{
					{key: "a", label: "Generate Payroll", name: "payroll.generate", run: m.generatePayroll},
					{key: "b", label: "View Payroll", name: "payroll.list", run: m.viewPayroll},
					{key: "c", label: "Export Payslip PDF", name: "payroll.payslip", run: m.exportPayslip},
					{key: "d", label: "Export Payroll Register CSV", name: "payroll.export", run: m.exportRegister},
				},
			})},
			{key: "5", label: "Reports/Search", run: sub(level{
				title:  "Reports/Search",
				prompt: "Choice: ",
				commands: []command{
					{key: "a", label: "Search Employee by Department", name: "employee.search", run: m.searchByDepartment},
				},
			})},
			{key: "6", label: "Exit", run: func(context.Context) error { return errExit }},
		},
	}
}

// Run loops over the top-level menu until Exit is chosen or input ends. A
// prompt blocked on input only notices cancellation once the reader fails,
// so callers close the input when ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.Info("interactive session started")
	defer m.logger.Info("interactive session finished")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render(m.top, false)
		choice, err := m.readLine(m.top.prompt)
		if err != nil {
			return interrupted(ctx, err)
		}

		cmd, ok := m.top.find(choice)
		if !ok {
			m.printInvalidChoice(choice)
			continue
		}

		err = cmd.run(ctx)
		switch {
		case errors.Is(err, errExit):
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		case err != nil:
			return interrupted(ctx, err)
		}
	}
}

func (m *Menu) runLevel(ctx context.Context, l level) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render(l, true)
		choice, err := m.readLine(l.prompt)
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}

		cmd, ok := l.find(choice)
		if !ok {
			m.printInvalidChoice(choice)
			continue
		}

		opCtx := contextutil.NewOperation(ctx, m.logger, cmd.name)
		if err := cmd.run(opCtx); err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return err
			}
			contextutil.GetLogger(opCtx, m.logger).Warn("menu operation failed", zap.Error(err))
			m.printError(err)
		}
	}
}

func (m *Menu) render(l level, withBack bool) {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, l.title)
	for _, c := range l.commands {
		fmt.Fprintf(m.out, "%s. %s\n", c.key, c.label)
	}
	if withBack {
		fmt.Fprintln(m.out, "0. Back")
	}
}

func (m *Menu) printInvalidChoice(choice string) {
	m.logger.Debug("invalid menu choice", zap.String("choice", choice))
	fmt.Fprintln(m.out, "Error: Invalid choice")
}

// interrupted ends the session: end of input is a normal exit, and a read
// failing because ctx was cancelled reports the cancellation.
func interrupted(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
