package validator

import "strings"

// Resultは集約型の検証結果。
// ルールは途中で打ち切らず、違反は全部ためてから返す。
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func NewResult() Result {
	return Result{Valid: true}
}

func Fail(msgs ...string) Result {
	return Result{Valid: len(msgs) == 0, Errors: msgs}
}

func (r *Result) Add(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

func (r *Result) Merge(other Result) {
	if other.Valid {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, other.Errors...)
}

// 表示用にまとめる（1行1違反）
func (r Result) Message() string {
	if len(r.Errors) == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range r.Errors {
		b.WriteString("• ")
		b.WriteString(e)
		if i < len(r.Errors)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
