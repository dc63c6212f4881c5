package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/studio-site-backend/internal/models"
)

// RetentionDays is how long visits are kept; older events are
// discarded every time the log is written
const RetentionDays = 90

// VisitLog is the single shared page-view sequence. Appends rewrite
// the whole file, pruning expired events along the way, so the log
// never grows past the retention horizon.
type VisitLog struct {
	path string
	log  zerolog.Logger
}

// NewVisitLog creates a VisitLog stored at dir/visits.json
func NewVisitLog(dir string, log zerolog.Logger) *VisitLog {
	return &VisitLog{
		path: filepath.Join(dir, "visits.json"),
		log:  log.With().Str("store", "traffic").Logger(),
	}
}

// Append adds one visit and prunes everything older than the horizon
func (l *VisitLog) Append(visit models.Visit) error {
	visits, err := l.All()
	if err != nil {
		return err
	}
	visits = append(visits, visit)

	horizon := visit.Timestamp.AddDate(0, 0, -RetentionDays)
	kept := visits[:0]
	for _, v := range visits {
		if !v.Timestamp.Before(horizon) {
			kept = append(kept, v)
		}
	}
	if dropped := len(visits) - len(kept); dropped > 0 {
		l.log.Debug().Int("dropped", dropped).Msg("Pruned expired visits")
	}

	data, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0644)
}

// All returns every stored visit in append order. A missing log reads
// as empty; a corrupt log is reported, not silently reset.
func (l *VisitLog) All() ([]models.Visit, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Visit{}, nil
		}
		return nil, err
	}
	var visits []models.Visit
	if err := json.Unmarshal(data, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}
