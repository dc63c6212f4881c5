package store

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/config"
)

// Stores holds every file-backed store the services share
type Stores struct {
	Submissions *RecordStore
	Emails      *RecordStore
	Contacts    *RecordStore
	Posts       *RecordStore
	Visits      *VisitLog
	Comments    *CommentStore
}

// New creates all stores over the configured storage layout
func New(cfg *config.StorageConfig, log zerolog.Logger) *Stores {
	return &Stores{
		Submissions: NewRecordStore(Config{Dir: cfg.SubmissionsDir()}, log),
		Emails:      NewRecordStore(Config{Dir: cfg.EmailsDir()}, log),
		Contacts:    NewRecordStore(Config{Dir: cfg.ContactsDir()}, log),
		Posts:       NewRecordStore(Config{Dir: cfg.BlogDataDir()}, log),
		Visits:      NewVisitLog(cfg.TrafficDir(), log),
		Comments:    NewCommentStore(cfg.CommentsDir(), log),
	}
}

// EnsureDirs creates every record directory once at startup, so no
// request handler has to carry mkdir checks
func EnsureDirs(cfg *config.StorageConfig, uploadDir string) error {
	dirs := []string{
		cfg.SubmissionsDir(),
		cfg.EmailsDir(),
		cfg.ContactsDir(),
		cfg.CommentsDir(),
		cfg.BlogDataDir(),
		cfg.TrafficDir(),
		cfg.BlogHTMLDir(),
		uploadDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
