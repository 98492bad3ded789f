package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/minatgo/minatgo/internal/questions"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s, err := Open("file:TestOpenClose?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"questions", "kv", "quiz_events", "llm_events", "contact_messages", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestAutoMigrationCreatesSchemaIndexes(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, index := range []string{
		"quiz_events_attempt_id",
		"quiz_events_sequence",
		"quiz_events_timestamp",
		"llm_events_sequence",
		"llm_events_timestamp",
		"llm_events_purpose",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='index' AND name=?", index,
		).Scan(&name)
		if err != nil {
			t.Errorf("index %s: %v", index, err)
		}
	}
}

func TestTablesFollowEntSchema(t *testing.T) {
	tables, err := Tables()
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	byName := make(map[string][]string, len(tables))
	for _, tbl := range tables {
		if len(tbl.PrimaryKey) != 1 {
			t.Errorf("table %s: primary key = %d columns", tbl.Name, len(tbl.PrimaryKey))
		}
		var cols []string
		for _, c := range tbl.Columns {
			cols = append(cols, c.Name)
		}
		byName[tbl.Name] = cols
	}

	want := map[string]string{
		"questions":        "id,text,optiona,optionb,type,created_at,updated_at",
		"kv":               "key,value,updated_at",
		"quiz_events":      "id,sequence,timestamp,attempt_id,origin,answered,total,counts,dominant",
		"contact_messages": "id,name,email,message,created_at",
	}
	for table, cols := range want {
		if got := strings.Join(byName[table], ","); got != cols {
			t.Errorf("%s columns = %s, want %s", table, got, cols)
		}
	}
	if _, ok := byName["llm_events"]; !ok {
		t.Error("llm_events table missing")
	}
}

func TestReopenKeepsData(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/minatgo.db"
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(dsn)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.KV().Get(context.Background(), "k")
	if err != nil || got != "v" {
		t.Errorf("get after reopen = %q, %v", got, err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestQuestionRepoCRUD(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	created, err := repo.Create(ctx, questions.Record{
		Text: "Kamu lebih suka", OptionA: "Memperbaiki mesin", OptionB: "Meneliti sel", Type: "R-I",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != "R-I" || got.OptionA != "Memperbaiki mesin" {
		t.Errorf("get = %+v", got)
	}

	got.Type = "A-S"
	if _, err := repo.Update(ctx, *got); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err := repo.ListQuestions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Type != "A-S" {
		t.Errorf("list = %+v", list)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
	if _, err := repo.Update(ctx, questions.Record{ID: 999, Text: "x", OptionA: "a", OptionB: "b", Type: "R-I"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: err = %v, want ErrNotFound", err)
	}
}

func TestQuestionRepoReplaceAllFeedsLoader(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, questions.DefaultRecords()); err != nil {
		t.Fatalf("replace all: %v", err)
	}
	bank, err := questions.Load(ctx, repo)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Len() != 30 || len(bank.Rejected) != 0 {
		t.Errorf("bank len = %d, rejected = %d", bank.Len(), len(bank.Rejected))
	}
	// ListQuestions is ordered by ID, so the bank keeps the default layout.
	if bank.Pairs[0].A != "R" || bank.Pairs[29].A != "C" {
		t.Errorf("pairs out of order: first %v last %v", bank.Pairs[0], bank.Pairs[29])
	}
}

func TestKVRepo(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "k", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", "two"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, err := kv.Get(ctx, "k")
	if err != nil || v != "two" {
		t.Errorf("get = %q, %v; want two", v, err)
	}

	b, err := kv.GetBool(ctx, "flag", true)
	if err != nil || !b {
		t.Errorf("GetBool default = %v, %v", b, err)
	}
	if err := kv.SetBool(ctx, "flag", false); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	if b, _ := kv.GetBool(ctx, "flag", true); b {
		t.Error("GetBool = true after SetBool(false)")
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v", err)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"insight", "insight", "other"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  10 * (i + 1),
			OutputTokens: 5,
			LatencyMs:    100,
			Success:      i != 2,
			RequestBody:  "req",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected newest first, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].Success {
		t.Error("newest event should be the failed one")
	}

	e, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil || e == nil {
		t.Fatalf("get: %v, %v", e, err)
	}
	if e.RequestBody != "req" {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if missing, err := repo.GetLLMEvent(ctx, 9999); err != nil || missing != nil {
		t.Errorf("get missing = %v, %v; want nil, nil", missing, err)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 || usage[0].Purpose != "insight" || usage[0].Calls != 2 || usage[0].InputTokens != 30 {
		t.Errorf("usage = %+v", usage)
	}
}

func TestQuizEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := time.Now().Add(-time.Minute)
	seq, err := repo.AppendQuizCompleted(ctx, QuizEventData{
		AttemptID: "a1",
		Origin:    "tui",
		Answered:  30,
		Total:     30,
		Counts:    map[string]int{"R": 10, "I": 20},
		Dominant:  []string{"I"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryQuizEvents(ctx, QueryOpts{From: start})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	got := events[0]
	if got.Sequence != seq || got.AttemptID != "a1" || got.Counts["I"] != 20 || got.Dominant[0] != "I" {
		t.Errorf("event = %+v", got)
	}

	after, err := repo.QueryQuizEvents(ctx, QueryOpts{After: seq})
	if err != nil || len(after) != 0 {
		t.Errorf("after = %v, %v; want none", after, err)
	}
}

func TestContactRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.Contacts()
	ctx := context.Background()

	for _, name := range []string{"Ani", "Budi"} {
		if _, err := repo.Save(ctx, ContactMessage{Name: name, Email: name + "@example.com", Message: "halo"}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	msgs, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Name != "Budi" {
		t.Errorf("list = %+v", msgs)
	}
}
