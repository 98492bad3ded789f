package quiz

import (
	"github.com/minatgo/minatgo/internal/questions"
	qz "github.com/minatgo/minatgo/internal/quiz"
)

// bankLoadedMsg carries the result of loading the question bank.
type bankLoadedMsg struct {
	Bank *questions.Bank
	Err  error
}

// submittedMsg is sent once the snapshot has been persisted.
type submittedMsg struct {
	Snapshot  *qz.Snapshot
	Err       error
	RecordErr error
}
