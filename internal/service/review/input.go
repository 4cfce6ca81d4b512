package review

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// StatusFilter values accepted by List.
const (
	StatusAll      = "all"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ListInput holds the parameters for listing the queue.
type ListInput struct {
	// Status "" means pending; "all" disables the filter.
	Status string
	// Limit <= 0 means the configured default.
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var c domain.Checker
	switch strings.ToLower(i.Status) {
	case "", StatusAll, StatusPending, StatusApproved, StatusRejected:
	default:
		c.Check(false, "status", "must be one of all, pending, approved, rejected")
	}
	c.Check(i.Offset >= 0, "offset", "must be >= 0")
	return c.Err()
}

// statusFilter returns nil for "all". An omitted status selects the
// pending queue.
func (i ListInput) statusFilter() *domain.ReviewStatus {
	s := domain.ReviewStatus(strings.ToLower(i.Status))
	if s == "" {
		s = domain.ReviewStatusPending
	}
	if !s.IsValid() {
		return nil
	}
	return &s
}

// ExportInput holds the parameters for exporting approved examples.
type ExportInput struct {
	Format string
	Levels []int
}

// Validate checks all fields and collects all errors.
func (i ExportInput) Validate() error {
	var c domain.Checker
	format := strings.ToLower(i.Format)
	c.Check(format == FormatJSON || format == FormatCSV, "format", "must be json or csv")
	for _, l := range i.Levels {
		if !domain.IsValidLevel(l) {
			c.Check(false, "level", "must be between 1 and 5")
			break
		}
	}
	return c.Err()
}

// ParseID parses a lesson id as sent by clients.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// ParseIDs parses every id, reporting the first invalid one.
func ParseIDs(raw []string) ([]int64, error) {
	if len(raw) == 0 {
		return nil, domain.NewValidationError("ids", "at least one id is required")
	}
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := ParseID(s)
		if err != nil {
			return nil, domain.NewValidationError("ids", "invalid id "+strconv.Quote(s))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
