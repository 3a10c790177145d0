package leads

import (
	"context"
	"sync"
	"time"

	"github.com/skillupx/lead-intake/internal/notify"
)

// callLog records collaborator invocations in order across fakes.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, name)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeSheet struct {
	log  *callLog
	rows [][]string
	err  error
}

func (f *fakeSheet) AppendRow(_ context.Context, row []string) error {
	f.log.add(StageSheetAppend)
	f.rows = append(f.rows, row)
	return f.err
}

type fakeNotifier struct {
	log     *callLog
	notices []notify.LeadNotice
	err     error
}

func (f *fakeNotifier) NotifyNewLead(_ context.Context, notice notify.LeadNotice) error {
	f.log.add(StageEmailSend)
	f.notices = append(f.notices, notice)
	return f.err
}

// 2024-01-03 12:00 UTC is 17:30 IST.
var fixedInstant = time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)

func newTestService(sheetErr, emailErr error) (*Service, *fakeSheet, *fakeNotifier, *callLog) {
	log := &callLog{}
	sheet := &fakeSheet{log: log, err: sheetErr}
	notifier := &fakeNotifier{log: log, err: emailErr}
	svc := NewService(ServiceConfig{
		Sheet:    sheet,
		Notifier: notifier,
		Now:      func() time.Time { return fixedInstant },
	})
	return svc, sheet, notifier, log
}
