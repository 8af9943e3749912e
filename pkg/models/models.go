// Package models defines the structured documents bindtime emits: CLI
// reports in JSON or YAML and the HTTP API payloads.
package models

// StrategyResult is the outcome of benchmarking one strategy.
type StrategyResult struct {
	Name       string  `json:"name" yaml:"name"`
	Binding    string  `json:"binding" yaml:"binding"`
	Value      Float   `json:"value" yaml:"value"`
	Loops      int     `json:"loops" yaml:"loops"`
	DurationMs float64 `json:"duration_ms" yaml:"duration_ms"`
	// NsPerOp is zero when no loop was run.
	NsPerOp float64 `json:"ns_per_op" yaml:"ns_per_op"`
}

// ModuleReport is the benchmark of one function.
type ModuleReport struct {
	Function   string           `json:"function" yaml:"function"`
	Title      string           `json:"title" yaml:"title"`
	Order      int              `json:"order" yaml:"order"`
	Loops      int              `json:"loops" yaml:"loops"`
	Reference  *Float           `json:"reference,omitempty" yaml:"reference,omitempty"`
	Strategies []StrategyResult `json:"strategies" yaml:"strategies"`
}

// Report is the document written by "bindtime run --format json|yaml".
type Report struct {
	RunID     string         `json:"run_id" yaml:"run_id"`
	StartedAt string         `json:"started_at" yaml:"started_at"`
	GoVersion string         `json:"go_version" yaml:"go_version"`
	Platform  string         `json:"platform" yaml:"platform"`
	Modules   []ModuleReport `json:"modules" yaml:"modules"`
}

// VerifyEntry is one checked strategy or table.
type VerifyEntry struct {
	Function string `json:"function" yaml:"function"`
	Check    string `json:"check" yaml:"check"`
	Got      Float  `json:"got" yaml:"got"`
	Want     Float  `json:"want" yaml:"want"`
	RelError Float  `json:"rel_error" yaml:"rel_error"`
	OK       bool   `json:"ok" yaml:"ok"`
}

// VerifyReport summarizes a verification run.
type VerifyReport struct {
	Tolerance float64       `json:"tolerance" yaml:"tolerance"`
	Entries   []VerifyEntry `json:"entries" yaml:"entries"`
	Failures  int           `json:"failures" yaml:"failures"`
}

// TableDump describes a lookup table.
type TableDump struct {
	Function string  `json:"function" yaml:"function"`
	Size     int     `json:"size" yaml:"size"`
	Checksum string  `json:"checksum" yaml:"checksum"`
	Values   []Float `json:"values,omitempty" yaml:"values,omitempty"`
}

// FunctionInfo lists a function served by the API.
type FunctionInfo struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Order      int      `json:"order"`
	TableSize  int      `json:"table_size"`
	Strategies []string `json:"strategies"`
}

// EvaluateResponse is the body of GET /evaluate.
type EvaluateResponse struct {
	Function string  `json:"function"`
	X        float64 `json:"x"`
	Order    int     `json:"order"`
	Value    Float   `json:"value"`
}

// TableEntryResponse is the body of GET /table.
type TableEntryResponse struct {
	Function string `json:"function"`
	Index    int    `json:"index"`
	Value    Float  `json:"value"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse is the body of every failed API request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
