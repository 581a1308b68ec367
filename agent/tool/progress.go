package tool

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	contractx "github.com/edumentor/edumentor/agent/contract"
)

// ProgressRecord is one subject's study progress entry.
type ProgressRecord struct {
	Subject   string    `json:"subject"`
	Progress  int       `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProgressStore keeps study plans and per-subject progress in memory.
// Safe for concurrent use.
type ProgressStore struct {
	mu       sync.RWMutex
	plans    map[string]string
	progress map[string]ProgressRecord
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		plans:    make(map[string]string),
		progress: make(map[string]ProgressRecord),
	}
}

// SavePlan stores a generated study plan and seeds progress at zero
// when the subject has no entry yet.
func (s *ProgressStore) SavePlan(subject, plan string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.plans[subject] = plan
	if _, ok := s.progress[subject]; !ok {
		s.progress[subject] = ProgressRecord{
			Subject:   subject,
			Progress:  0,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
}

// SetProgress records a progress value for a subject. It reports
// whether the subject already had an entry.
func (s *ProgressStore) SetProgress(subject string, value int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec, existed := s.progress[subject]
	if !existed {
		rec = ProgressRecord{Subject: subject, CreatedAt: now}
	}
	rec.Progress = value
	rec.UpdatedAt = now
	s.progress[subject] = rec
	return existed
}

// Get returns the progress record for a subject.
func (s *ProgressStore) Get(subject string) (ProgressRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.progress[subject]
	return rec, ok
}

// All returns every progress record ordered by subject.
func (s *ProgressStore) All() []ProgressRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ProgressRecord, 0, len(s.progress))
	for _, rec := range s.progress {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

// ProgressTracker reads and updates study progress. Input forms:
// "subject: value" updates, "subject" queries, empty input lists all.
type ProgressTracker struct {
	store *ProgressStore
}

var _ contractx.Tool = (*ProgressTracker)(nil)

func NewProgressTracker(store *ProgressStore) *ProgressTracker {
	return &ProgressTracker{store: store}
}

func (t *ProgressTracker) Name() string { return "Progress_Tracker" }

func (t *ProgressTracker) Description() string {
	return "Theo dõi và cập nhật tiến độ học tập."
}

func (t *ProgressTracker) NeedsContext() bool { return false }

func (t *ProgressTracker) Execute(_ context.Context, in contractx.ToolInput) (string, error) {
	query := strings.TrimSpace(in.Question)

	if query == "" {
		return t.listAll(), nil
	}

	if subject, raw, ok := strings.Cut(query, ":"); ok {
		return t.update(strings.TrimSpace(subject), strings.TrimSpace(raw)), nil
	}

	return t.lookup(query), nil
}

func (t *ProgressTracker) update(subject, raw string) string {
	if subject == "" || raw == "" {
		return "Vui lòng cung cấp đầy đủ môn học và tiến độ."
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return "Tiến độ phải là số."
	}
	if value < 0 || value > 100 {
		return "Tiến độ phải từ 0 đến 100."
	}

	existed := t.store.SetProgress(subject, value)
	if existed {
		return fmt.Sprintf("Đã cập nhật tiến độ cho %s: %d%%", subject, value)
	}
	return fmt.Sprintf("Đã tạo và cập nhật tiến độ cho %s: %d%%", subject, value)
}

func (t *ProgressTracker) lookup(subject string) string {
	rec, ok := t.store.Get(subject)
	if !ok {
		return fmt.Sprintf("Không tìm thấy tiến độ cho %s.", subject)
	}
	if rec.UpdatedAt.After(rec.CreatedAt) {
		return fmt.Sprintf("Tiến độ cho %s: %d%% (Cập nhật lúc: %s)",
			rec.Subject, rec.Progress, rec.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return fmt.Sprintf("Tiến độ cho %s: %d%% (Tạo lúc: %s)",
		rec.Subject, rec.Progress, rec.CreatedAt.Format("2006-01-02 15:04"))
}

func (t *ProgressTracker) listAll() string {
	records := t.store.All()
	if len(records) == 0 {
		return "Chưa có dữ liệu tiến độ học tập."
	}

	var b strings.Builder
	b.WriteString("Tiến độ học tập hiện tại:")
	for _, rec := range records {
		fmt.Fprintf(&b, "\n- %s: %d%%", rec.Subject, rec.Progress)
	}
	return b.String()
}
