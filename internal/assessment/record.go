// Package assessment reads questionnaire answer sheets into records.
package assessment

// Record is one answered question from an assessment sheet.
type Record struct {
	QuestionID string `json:"question_id"`
	Applicable bool   `json:"is_applicable"`
	Score      *int   `json:"score"`
	Comment    string `json:"comment"`

	// Line is the 1-based line of the row in the source file.
	Line int `json:"-"`
}

// Sheet holds a loaded assessment file with its records and metadata.
type Sheet struct {
	Path    string
	Hash    string
	Records []Record
}

// Scored reports whether the record counts toward the aggregate.
func (r Record) Scored() bool {
	return r.Applicable && r.Score != nil && validScore(*r.Score)
}

// Column names recognized in the header row.
const (
	ColumnQuestionID = "question_id"
	ColumnApplicable = "is_applicable"
	ColumnScore      = "score"
	ColumnComment    = "comment"
)

const (
	minScore = 1
	maxScore = 10
)

func validScore(s int) bool {
	return s >= minScore && s <= maxScore
}

// applicableTokens are the lowercased values that mark a row applicable.
var applicableTokens = map[string]bool{
	"yes":  true,
	"y":    true,
	"1":    true,
	"true": true,
}
